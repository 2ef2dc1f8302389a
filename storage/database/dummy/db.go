package dummydb

import (
	"sync"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/assignment"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/catalog"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/teacher"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/topic"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/user"
)

type (
	// DB is the process-wide in-memory store. It owns every entity collection
	// and all id assignment; construct one at startup and pass it to the
	// repositories.
	DB struct {
		user      *userTable
		teacher   *teacherTable
		topic     *topicTable
		task      *taskTable
		generated *generatedTable
	}

	userTable struct {
		sync.RWMutex
		seq   int // last assigned id; never reused
		table map[int]*user.User
	}

	teacherTable struct {
		sync.RWMutex
		seq   int
		table map[int]*teacher.Teacher
	}

	topicTable struct {
		sync.RWMutex
		seq   int
		table map[int]*topic.Topic
	}

	taskTable struct {
		sync.RWMutex
		table map[int]catalog.Task
	}

	taskKey struct {
		userID  int
		topicID int
	}

	generatedTable struct {
		sync.RWMutex
		table map[taskKey]assignment.GeneratedTask
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:      &userTable{table: make(map[int]*user.User)},
		teacher:   &teacherTable{table: make(map[int]*teacher.Teacher)},
		topic:     &topicTable{table: make(map[int]*topic.Topic)},
		task:      &taskTable{table: make(map[int]catalog.Task)},
		generated: &generatedTable{table: make(map[taskKey]assignment.GeneratedTask)},
	}
	return db, nil
}
