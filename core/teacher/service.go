package teacher

import "errors"

// ErrNotFound is returned when a teacher id does not resolve.
var ErrNotFound = errors.New("teacher not found")

type (
	Repository interface {
		CreateTeacher(tch Teacher) (Teacher, error)
		QueryAllTeachers() ([]Teacher, error)
		GetTeacherByID(id int) (Teacher, error)
		UpdateTeacher(id int, ut UpdateTeacher) (Teacher, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nt NewTeacher) (Teacher, error) {
	tch := Teacher{
		LastName:    nt.LastName,
		FirstName:   nt.FirstName,
		MiddleName:  nt.MiddleName,
		Department:  nt.Department,
		Description: nt.Description,
		Photo:       nt.Photo,
		Topics:      []int{},
	}
	return svc.repo.CreateTeacher(tch)
}

func (svc *Service) QueryAll() ([]Teacher, error) {
	return svc.repo.QueryAllTeachers()
}

func (svc *Service) GetByID(id int) (Teacher, error) {
	return svc.repo.GetTeacherByID(id)
}

func (svc *Service) Update(id int, ut UpdateTeacher) (Teacher, error) {
	return svc.repo.UpdateTeacher(id, ut)
}
