package dummydb

import (
	"sort"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/catalog"
)

type taskRepository struct {
	db *taskTable
}

var _ catalog.Repository = (*taskRepository)(nil) // interface compliance check

func NewTaskRepository(db *DB) catalog.Repository {
	return &taskRepository{db: db.task}
}

func (repo *taskRepository) QueryAllTasks() ([]catalog.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	tasks := make([]catalog.Task, 0, len(repo.db.table))
	for _, tsk := range repo.db.table {
		tasks = append(tasks, tsk)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}
