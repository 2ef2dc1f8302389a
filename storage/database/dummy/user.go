package dummydb

import (
	"sort"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/user"
)

type userRepository struct {
	db *userTable
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.user}
}

// query returns copies of all users in insertion (id) order.
func (repo *userRepository) query() []user.User {
	users := make([]user.User, 0, len(repo.db.table))
	for _, u := range repo.db.table {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (repo *userRepository) CheckEmailUniqueness(email string, excludedUsers ...user.User) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.table {
		if usr.Email == email && !isExcluded(*usr, excludedUsers) {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	usr.ID = repo.db.seq
	if usr.CompletedTasks == nil {
		usr.CompletedTasks = []int{}
	}
	repo.db.table[usr.ID] = &usr
	return cloneUser(&usr), nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *userRepository) GetUserByID(id int) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if usr, ok := repo.db.table[id]; ok {
		return cloneUser(usr), nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.table {
		if usr.Email == email {
			return cloneUser(usr), nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) UpdateUser(id int, uu user.UpdateUser) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	origUsr, ok := repo.db.table[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if uu.Email != nil {
		origUsr.Email = *uu.Email
	}
	if uu.Password != nil {
		origUsr.Password = *uu.Password
	}
	if uu.LastName != nil {
		origUsr.LastName = *uu.LastName
	}
	if uu.FirstName != nil {
		origUsr.FirstName = *uu.FirstName
	}
	if uu.MiddleName != nil {
		origUsr.MiddleName = *uu.MiddleName
	}
	if uu.Role != nil {
		origUsr.Role = *uu.Role
	}
	if uu.Photo != nil {
		origUsr.Photo = *uu.Photo
	}
	if uu.LastName != nil || uu.FirstName != nil || uu.MiddleName != nil {
		origUsr.Name = user.DisplayName(origUsr.LastName, origUsr.FirstName, origUsr.MiddleName)
	}
	return cloneUser(origUsr), nil
}

func (repo *userRepository) AddCompletedTask(userID, taskID int) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	usr, ok := repo.db.table[userID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if usr.HasCompletedTask(taskID) {
		return user.User{}, user.ErrTaskExists
	}
	usr.CompletedTasks = append(usr.CompletedTasks, taskID)
	return cloneUser(usr), nil
}

func (repo *userRepository) RemoveCompletedTask(userID, taskID int) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	usr, ok := repo.db.table[userID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	// idempotent: removing an absent task still succeeds
	tasks := usr.CompletedTasks[:0]
	for _, id := range usr.CompletedTasks {
		if id != taskID {
			tasks = append(tasks, id)
		}
	}
	usr.CompletedTasks = tasks
	return cloneUser(usr), nil
}

// cloneUser copies the record so callers cannot mutate the stored slice.
func cloneUser(usr *user.User) user.User {
	cp := *usr
	cp.CompletedTasks = append([]int{}, usr.CompletedTasks...)
	return cp
}

func isExcluded(usr user.User, excludedUsers []user.User) bool {
	for _, excl := range excludedUsers {
		if excl.ID == usr.ID {
			return true
		}
	}
	return false
}
