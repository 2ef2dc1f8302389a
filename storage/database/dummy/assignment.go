package dummydb

import (
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/assignment"
)

type generatedTaskRepository struct {
	db *generatedTable
}

var _ assignment.Repository = (*generatedTaskRepository)(nil) // interface compliance check

func NewGeneratedTaskRepository(db *DB) assignment.Repository {
	return &generatedTaskRepository{db: db.generated}
}

func (repo *generatedTaskRepository) GetGeneratedTask(userID, topicID int) (assignment.GeneratedTask, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if gt, ok := repo.db.table[taskKey{userID, topicID}]; ok {
		return gt, nil
	}
	return assignment.GeneratedTask{}, assignment.ErrNotFound
}

// SaveGeneratedTask stores gt unless an entry already exists for the pair;
// an existing entry always wins so generated content stays stable.
func (repo *generatedTaskRepository) SaveGeneratedTask(userID, topicID int, gt assignment.GeneratedTask) (assignment.GeneratedTask, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	key := taskKey{userID, topicID}
	if existing, ok := repo.db.table[key]; ok {
		return existing, nil
	}
	repo.db.table[key] = gt
	return gt, nil
}
