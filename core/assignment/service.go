package assignment

import (
	"errors"
	"strings"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/topic"
)

// ErrNotFound is returned when no generated task is cached for a (user, topic) pair.
var ErrNotFound = errors.New("generated task not found")

type (
	// Repository is the generated-task cache, keyed by (userID, topicID).
	// Entries are never evicted or invalidated.
	Repository interface {
		GetGeneratedTask(userID, topicID int) (GeneratedTask, error)
		// SaveGeneratedTask stores gt for the (userID, topicID) pair unless an
		// entry already exists, and returns the stored entry either way.
		SaveGeneratedTask(userID, topicID int, gt GeneratedTask) (GeneratedTask, error)
	}

	Service struct {
		topics  topic.Repository
		cache   Repository
		content map[int]string
		answers map[int]string
	}
)

func NewService(topics topic.Repository, cache Repository, content, answers map[int]string) *Service {
	return &Service{
		topics:  topics,
		cache:   cache,
		content: content,
		answers: answers,
	}
}

// GetOrGenerate returns the task body for the (user, topic) pair, deriving and
// caching it on first request. A cached entry is returned unchanged even if
// the underlying topic has been updated since.
func (svc *Service) GetOrGenerate(userID, topicID int) (GeneratedTask, error) {
	tpc, err := svc.topics.GetTopicByID(topicID)
	if err != nil {
		return GeneratedTask{}, err
	}

	if gt, err := svc.cache.GetGeneratedTask(userID, topicID); err == nil {
		return gt, nil
	} else if err != ErrNotFound {
		return GeneratedTask{}, err
	}

	content, ok := svc.content[topicID]
	if !ok {
		content = defaultContent
	}
	gt := GeneratedTask{
		ID:        topicID,
		Title:     tpc.Title,
		Content:   content,
		TeacherID: tpc.TeacherID,
	}
	return svc.cache.SaveGeneratedTask(userID, topicID, gt)
}

// Grade compares the submitted answer against the topic's canonical answer.
// The submission is trimmed of surrounding whitespace; the comparison is an
// exact match with no further normalization.
func (svc *Service) Grade(topicID int, answer string) (Result, error) {
	if _, err := svc.topics.GetTopicByID(topicID); err != nil {
		return Result{}, err
	}

	key, ok := svc.answers[topicID]
	return Result{IsCorrect: ok && strings.TrimSpace(answer) == key}, nil
}
