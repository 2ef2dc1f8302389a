package user

import (
	"errors"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")
	ErrTaskExists  = errors.New("task already completed")
)

type (
	Repository interface {
		CheckEmailUniqueness(email string, excludedUsers ...User) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id int) (User, error)
		GetUserByEmail(email string) (User, error)
		// UpdateUser merges the set fields of uu into the stored record.
		// The record's ID never changes.
		UpdateUser(id int, uu UpdateUser) (User, error)
		AddCompletedTask(userID, taskID int) (User, error)
		RemoveCompletedTask(userID, taskID int) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkEmailUniqueness(email string, exclUsers ...User) error {
	if err := svc.repo.CheckEmailUniqueness(email, exclUsers...); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(nu NewUser) (User, error) {
	usr := User{
		Email:          nu.Email,
		Password:       nu.Password,
		LastName:       nu.LastName,
		FirstName:      nu.FirstName,
		MiddleName:     nu.MiddleName,
		Name:           DisplayName(nu.LastName, nu.FirstName, nu.MiddleName),
		Role:           nu.Role,
		Photo:          nu.Photo,
		CompletedTasks: []int{},
	}
	return svc.repo.CreateUser(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id int) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

func (svc *Service) Update(id int, uu UpdateUser) (User, error) {
	return svc.repo.UpdateUser(id, uu)
}

// AddCompletedTask marks taskID as completed for the user;
// ErrTaskExists if it is already in the set.
func (svc *Service) AddCompletedTask(userID, taskID int) (User, error) {
	return svc.repo.AddCompletedTask(userID, taskID)
}

// RemoveCompletedTask removes taskID from the user's completed set.
// Removing an absent task is a no-op that still succeeds.
func (svc *Service) RemoveCompletedTask(userID, taskID int) (User, error) {
	return svc.repo.RemoveCompletedTask(userID, taskID)
}
