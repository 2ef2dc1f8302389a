package dummydb

import (
	"sort"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teacher}
}

func (repo *teacherRepository) CreateTeacher(tch teacher.Teacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	tch.ID = repo.db.seq
	if tch.Topics == nil {
		tch.Topics = []int{}
	}
	repo.db.table[tch.ID] = &tch
	return cloneTeacher(&tch), nil
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	teachers := make([]teacher.Teacher, 0, len(repo.db.table))
	for _, tch := range repo.db.table {
		teachers = append(teachers, cloneTeacher(tch))
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

func (repo *teacherRepository) GetTeacherByID(id int) (teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if tch, ok := repo.db.table[id]; ok {
		return cloneTeacher(tch), nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) UpdateTeacher(id int, upd teacher.UpdateTeacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	origTch, ok := repo.db.table[id]
	if !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	if upd.LastName != nil {
		origTch.LastName = *upd.LastName
	}
	if upd.FirstName != nil {
		origTch.FirstName = *upd.FirstName
	}
	if upd.MiddleName != nil {
		origTch.MiddleName = *upd.MiddleName
	}
	if upd.Department != nil {
		origTch.Department = *upd.Department
	}
	if upd.Description != nil {
		origTch.Description = *upd.Description
	}
	if upd.Photo != nil {
		origTch.Photo = *upd.Photo
	}
	return cloneTeacher(origTch), nil
}

// cloneTeacher copies the record so callers cannot mutate the stored topics list.
func cloneTeacher(tch *teacher.Teacher) teacher.Teacher {
	cp := *tch
	cp.Topics = append([]int{}, tch.Topics...)
	return cp
}
