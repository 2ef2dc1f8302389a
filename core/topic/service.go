package topic

import "errors"

// ErrNotFound is returned when a topic id does not resolve.
var ErrNotFound = errors.New("topic not found")

type (
	Repository interface {
		// CreateTopic stores the topic and appends its id to the owning
		// teacher's topics list; teacher.ErrNotFound if the owner is missing.
		CreateTopic(tpc Topic) (Topic, error)
		QueryAllTopics() ([]Topic, error)
		GetTopicByID(id int) (Topic, error)
		UpdateTopic(id int, upd UpdateTopic) (Topic, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nt NewTopic) (Topic, error) {
	tpc := Topic{
		Title:      nt.Title,
		Template:   nt.Template,
		Parameters: nt.Parameters,
		TeacherID:  nt.TeacherID,
	}
	return svc.repo.CreateTopic(tpc)
}

func (svc *Service) QueryAll() ([]Topic, error) {
	return svc.repo.QueryAllTopics()
}

func (svc *Service) GetByID(id int) (Topic, error) {
	return svc.repo.GetTopicByID(id)
}

func (svc *Service) Update(id int, upd UpdateTopic) (Topic, error) {
	return svc.repo.UpdateTopic(id, upd)
}
