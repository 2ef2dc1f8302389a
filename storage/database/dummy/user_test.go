package dummydb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/user"
)

func strPtr(s string) *string { return &s }

func openDB(t *testing.T) *DB {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return db
}

func createUser(t *testing.T, repo user.Repository, email, role string) user.User {
	usr, err := repo.CreateUser(user.User{
		Email:    email,
		Password: "123",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func Test_userRepository_CreateUser_assignsSequentialIDs(t *testing.T) {
	repo := NewUserRepository(openDB(t))

	usr1 := createUser(t, repo, "a@example.com", user.RoleUser)
	usr2 := createUser(t, repo, "b@example.com", user.RoleUser)
	usr3 := createUser(t, repo, "c@example.com", user.RoleAdmin)

	assert.Equal(t, 1, usr1.ID)
	assert.Equal(t, 2, usr2.ID)
	assert.Equal(t, 3, usr3.ID)
	assert.NotNil(t, usr1.CompletedTasks)
	assert.Empty(t, usr1.CompletedTasks)

	users, err := repo.QueryAllUsers()
	if err != nil {
		t.Fatalf("QueryAllUsers() failed: %v", err)
	}
	assert.Len(t, users, 3)
	for i, usr := range users {
		assert.Equal(t, i+1, usr.ID) // insertion order
	}
}

func Test_userRepository_GetUserByEmail(t *testing.T) {
	repo := NewUserRepository(openDB(t))
	createUser(t, repo, "a@example.com", user.RoleUser)

	usr, err := repo.GetUserByEmail("a@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, usr.ID)

	_, err = repo.GetUserByEmail("nobody@example.com")
	assert.Equal(t, user.ErrNotFound, err)
}

func Test_userRepository_CheckEmailUniqueness(t *testing.T) {
	repo := NewUserRepository(openDB(t))
	usr := createUser(t, repo, "a@example.com", user.RoleUser)

	assert.Equal(t, user.ErrEmailExists, repo.CheckEmailUniqueness("a@example.com"))
	assert.NoError(t, repo.CheckEmailUniqueness("b@example.com"))

	// a user may keep their own email
	assert.NoError(t, repo.CheckEmailUniqueness("a@example.com", usr))
}

func Test_userRepository_UpdateUser_mergesSetFieldsOnly(t *testing.T) {
	repo := NewUserRepository(openDB(t))
	usr, err := repo.CreateUser(user.User{
		Email:     "a@example.com",
		Password:  "123",
		LastName:  "Иванов",
		FirstName: "Иван",
		Name:      "Иванов Иван",
		Role:      user.RoleUser,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	updated, err := repo.UpdateUser(usr.ID, user.UpdateUser{
		FirstName: strPtr("Пётр"),
		Photo:     strPtr("data:image/png;base64,xxx"),
	})
	assert.NoError(t, err)
	assert.Equal(t, usr.ID, updated.ID)
	assert.Equal(t, "a@example.com", updated.Email) // untouched
	assert.Equal(t, "Пётр", updated.FirstName)
	assert.Equal(t, "Иванов Пётр", updated.Name) // re-derived
	assert.Equal(t, "data:image/png;base64,xxx", updated.Photo)
	assert.Equal(t, user.RoleUser, updated.Role) // untouched

	_, err = repo.UpdateUser(999, user.UpdateUser{FirstName: strPtr("x")})
	assert.Equal(t, user.ErrNotFound, err)
}

func Test_userRepository_AddCompletedTask(t *testing.T) {
	repo := NewUserRepository(openDB(t))
	usr := createUser(t, repo, "a@example.com", user.RoleUser)

	updated, err := repo.AddCompletedTask(usr.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, updated.CompletedTasks)

	// duplicate add is a conflict
	_, err = repo.AddCompletedTask(usr.ID, 1)
	assert.Equal(t, user.ErrTaskExists, err)

	updated, err = repo.AddCompletedTask(usr.ID, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, updated.CompletedTasks)

	_, err = repo.AddCompletedTask(999, 1)
	assert.Equal(t, user.ErrNotFound, err)
}

func Test_userRepository_RemoveCompletedTask_isIdempotent(t *testing.T) {
	repo := NewUserRepository(openDB(t))
	usr := createUser(t, repo, "a@example.com", user.RoleUser)

	if _, err := repo.AddCompletedTask(usr.ID, 1); err != nil {
		t.Fatalf("AddCompletedTask() failed: %v", err)
	}

	updated, err := repo.RemoveCompletedTask(usr.ID, 1)
	assert.NoError(t, err)
	assert.Empty(t, updated.CompletedTasks)

	// removing an absent task still succeeds
	updated, err = repo.RemoveCompletedTask(usr.ID, 1)
	assert.NoError(t, err)
	assert.Empty(t, updated.CompletedTasks)

	_, err = repo.RemoveCompletedTask(999, 1)
	assert.Equal(t, user.ErrNotFound, err)
}

func Test_userRepository_returnsCopies(t *testing.T) {
	repo := NewUserRepository(openDB(t))
	usr := createUser(t, repo, "a@example.com", user.RoleUser)

	if _, err := repo.AddCompletedTask(usr.ID, 1); err != nil {
		t.Fatalf("AddCompletedTask() failed: %v", err)
	}

	got, _ := repo.GetUserByID(usr.ID)
	got.CompletedTasks[0] = 42

	fresh, _ := repo.GetUserByID(usr.ID)
	assert.Equal(t, []int{1}, fresh.CompletedTasks)
}
