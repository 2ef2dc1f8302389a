package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core"
)

// NewUser contains information needed to create a new User.
type NewUser struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	Role       string `json:"role" validate:"required,oneof=admin user"`
	Photo      string `json:"photo"`
}

func (nu *NewUser) Validate(validate *validator.Validate, svc *Service) error {
	nu.Email = core.CleanString(nu.Email, true /* lower */)

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkEmailUniqueness(nu.Email)
}

// UpdateUser defines what information may be provided to modify an existing User.
// Only fields present in the payload replace the stored values (shallow merge).
type UpdateUser struct {
	Email      *string `json:"email" validate:"omitempty,email"`
	Password   *string `json:"password"`
	LastName   *string `json:"lastName"`
	FirstName  *string `json:"firstName"`
	MiddleName *string `json:"middleName"`
	Role       *string `json:"role" validate:"omitempty,oneof=admin user"`
	Photo      *string `json:"photo"`
}

func (uu *UpdateUser) Validate(origUsr User, validate *validator.Validate, svc *Service) error {
	if uu.Email != nil {
		email := core.CleanString(*uu.Email, true /* lower */)
		uu.Email = &email
	}

	if err := validate.Struct(uu); err != nil {
		return err
	}
	if uu.Email != nil {
		return svc.checkEmailUniqueness(*uu.Email, origUsr)
	}
	return nil
}
