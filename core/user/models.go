package user

import (
	"errors"
	"strings"
)

// Roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AllRoles lists every role accepted on the API boundary.
var AllRoles = []string{RoleUser, RoleAdmin}

var errPasswordMismatch = errors.New("password mismatch")

type User struct {
	ID             int    `json:"id"`
	Email          string `json:"email"`
	Password       string `json:"-"`
	LastName       string `json:"lastName"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Photo          string `json:"photo"`
	CompletedTasks []int  `json:"completedTasks"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CheckPassword compares the stored opaque credential with the provided one.
// Credentials are matched verbatim; there is no hashing scheme.
func (u *User) CheckPassword(pwd string) error {
	if u.Password != pwd {
		return errPasswordMismatch
	}
	return nil
}

// HasCompletedTask reports whether taskID is in the user's completed set.
func (u *User) HasCompletedTask(taskID int) bool {
	for _, id := range u.CompletedTasks {
		if id == taskID {
			return true
		}
	}
	return false
}

// DisplayName derives the user's display name from the name parts,
// "lastName firstName middleName", skipping empty parts.
func DisplayName(lastName, firstName, middleName string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{lastName, firstName, middleName} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
