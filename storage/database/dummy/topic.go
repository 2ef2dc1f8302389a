package dummydb

import (
	"sort"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/teacher"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/topic"
)

type topicRepository struct {
	db       *topicTable
	teachers *teacherTable
}

var _ topic.Repository = (*topicRepository)(nil) // interface compliance check

func NewTopicRepository(db *DB) topic.Repository {
	return &topicRepository{db: db.topic, teachers: db.teacher}
}

// CreateTopic stores the topic and appends its id to the owning teacher's
// topics list. Lock ordering: teacher table before topic table.
func (repo *topicRepository) CreateTopic(tpc topic.Topic) (topic.Topic, error) {
	repo.teachers.Lock()
	defer repo.teachers.Unlock()

	owner, ok := repo.teachers.table[tpc.TeacherID]
	if !ok {
		return topic.Topic{}, teacher.ErrNotFound
	}

	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	tpc.ID = repo.db.seq
	repo.db.table[tpc.ID] = &tpc
	owner.Topics = append(owner.Topics, tpc.ID)
	return tpc, nil
}

func (repo *topicRepository) QueryAllTopics() ([]topic.Topic, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	topics := make([]topic.Topic, 0, len(repo.db.table))
	for _, tpc := range repo.db.table {
		topics = append(topics, *tpc)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}

func (repo *topicRepository) GetTopicByID(id int) (topic.Topic, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if tpc, ok := repo.db.table[id]; ok {
		return *tpc, nil
	}
	return topic.Topic{}, topic.ErrNotFound
}

func (repo *topicRepository) UpdateTopic(id int, upd topic.UpdateTopic) (topic.Topic, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	origTpc, ok := repo.db.table[id]
	if !ok {
		return topic.Topic{}, topic.ErrNotFound
	}
	if upd.Title != nil {
		origTpc.Title = *upd.Title
	}
	if upd.Template != nil {
		origTpc.Template = *upd.Template
	}
	if upd.Parameters != nil {
		origTpc.Parameters = *upd.Parameters
	}
	if upd.TeacherID != nil {
		// accepted verbatim; the old and new teachers' topics lists are not
		// re-linked
		origTpc.TeacherID = *upd.TeacherID
	}
	return *origTpc, nil
}
