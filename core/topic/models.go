package topic

import (
	"github.com/go-playground/validator/v10"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core"
)

// Parameters is the caller-defined generation parameter record stored with a
// topic. The store does not interpret it.
type Parameters struct {
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Questions  *int   `json:"questions,omitempty"`
	Limit      *int   `json:"limit,omitempty"`
}

type Topic struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Template   string     `json:"template"`
	Parameters Parameters `json:"parameters"`
	TeacherID  int        `json:"teacherId"`
}

// NewTopic contains information needed to create a new Topic.
// TeacherID must resolve to an existing Teacher.
type NewTopic struct {
	Title      string     `json:"title" validate:"required"`
	Template   string     `json:"template"`
	Parameters Parameters `json:"parameters"`
	TeacherID  int        `json:"teacherId" validate:"required"`
}

func (nt *NewTopic) Validate(validate *validator.Validate) error {
	nt.Title = core.CleanString(nt.Title)
	return validate.Struct(nt)
}

// UpdateTopic defines what information may be provided to modify an existing Topic.
// Only fields present in the payload replace the stored values (shallow merge).
type UpdateTopic struct {
	Title      *string     `json:"title"`
	Template   *string     `json:"template"`
	Parameters *Parameters `json:"parameters"`
	TeacherID  *int        `json:"teacherId"`
}

func (upd *UpdateTopic) Validate(validate *validator.Validate) error {
	return validate.Struct(upd)
}
