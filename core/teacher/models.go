package teacher

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core"
)

type Teacher struct {
	ID          int    `json:"id"`
	LastName    string `json:"lastName"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	Department  string `json:"department"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
	Topics      []int  `json:"topics"`
}

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	LastName    string `json:"lastName" validate:"required"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	Department  string `json:"department" validate:"required,department"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
}

func (nt *NewTeacher) Validate(validate *validator.Validate) error {
	nt.LastName = core.CleanString(nt.LastName)
	return validate.Struct(nt)
}

// UpdateTeacher defines what information may be provided to modify an existing Teacher.
// Only fields present in the payload replace the stored values (shallow merge).
// The topics list is owned by the store and cannot be set directly.
type UpdateTeacher struct {
	LastName    *string `json:"lastName"`
	FirstName   *string `json:"firstName"`
	MiddleName  *string `json:"middleName"`
	Department  *string `json:"department" validate:"omitempty,department"`
	Description *string `json:"description"`
	Photo       *string `json:"photo"`
}

func (upd *UpdateTeacher) Validate(validate *validator.Validate) error {
	return validate.Struct(upd)
}

var (
	departmentTag  = "department"
	departmentText = "unknown department"
)

// InitValidators registers the teacher-specific validators.
// departments is the configured list of valid department values.
func InitValidators(validate *validator.Validate, translator ut.Translator, departments []string) {
	_ = validate.RegisterValidation(departmentTag, departmentValidation(departments))
	core.RegisterCustomTranslation(validate, translator, departmentTag, departmentText)
}

// departmentValidation checks that the provided department is one of the configured values.
func departmentValidation(departments []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if dept, ok := fl.Field().Interface().(string); ok {
			for _, d := range departments {
				if d == dept {
					return true
				}
			}
		}
		return false
	}
}
