// Package catalog exposes the read-only reference data of the platform:
// the fixed list of completable tasks and the configured departments.
package catalog

// Task is a completable unit from the fixed catalog, referenced by
// user.User.CompletedTasks. Distinct from a generated task.
type Task struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type (
	Repository interface {
		QueryAllTasks() ([]Task, error)
	}

	Service struct {
		repo        Repository
		departments []string
	}
)

func NewService(repo Repository, departments []string) *Service {
	return &Service{repo: repo, departments: departments}
}

func (svc *Service) Tasks() ([]Task, error) {
	return svc.repo.QueryAllTasks()
}

func (svc *Service) Departments() []string {
	return svc.departments
}
