package dummydb

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/catalog"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/teacher"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/topic"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/user"
)

func intPtr(i int) *int { return &i }

// LoadFixtures seeds the store with the initial platform data: an admin, a
// learner, the teaching staff, the topics of teacher 1 and the task catalog.
func LoadFixtures(db *DB) error {
	users := NewUserRepository(db)
	teachers := NewTeacherRepository(db)
	topics := NewTopicRepository(db)

	seedUsers := []user.User{
		{
			Email:          "123@123.com",
			Password:       "123",
			LastName:       "Admin",
			FirstName:      "User",
			Name:           "Admin User",
			Role:           user.RoleAdmin,
			CompletedTasks: []int{1},
		},
		{
			Email:          "user@example.com",
			Password:       "123",
			LastName:       "Иванов",
			FirstName:      "Иван",
			MiddleName:     "Иванович",
			Name:           "Иванов Иван Иванович",
			Role:           user.RoleUser,
			CompletedTasks: []int{2, 3},
		},
	}
	for _, usr := range seedUsers {
		if _, err := users.CreateUser(usr); err != nil {
			return errors.Wrapf(err, "seeding user %s", usr.Email)
		}
	}

	seedTeachers := []teacher.Teacher{
		{
			LastName:    "Преподаватель1",
			FirstName:   "Имя1",
			MiddleName:  "Отчество1",
			Department:  "Математика",
			Description: "Описание преподавателя 1. Специализируется в области математики.",
		},
		{
			LastName:    "Преподаватель2",
			FirstName:   "Имя2",
			MiddleName:  "Отчество2",
			Department:  "Информатика",
			Description: "Описание преподавателя 2. Специализируется в области информатики.",
		},
		{
			LastName:    "Преподаватель3",
			FirstName:   "Имя3",
			MiddleName:  "Отчество3",
			Department:  "Физика",
			Description: "Описание преподавателя 3. Специализируется в области физики.",
		},
	}
	for _, tch := range seedTeachers {
		if _, err := teachers.CreateTeacher(tch); err != nil {
			return errors.Wrapf(err, "seeding teacher %s", tch.LastName)
		}
	}

	// topics are created through the repository so teacher 1's topics list
	// stays consistent with the created ids
	seedTopics := []topic.Topic{
		{
			Title:      "Тема 1: Уравнения",
			Template:   "Решите уравнение: {equation}",
			Parameters: topic.Parameters{Difficulty: "medium", Questions: intPtr(5)},
			TeacherID:  1,
		},
		{
			Title:      "Тема 2: Программирование",
			Template:   "Напишите программу: {task}",
			Parameters: topic.Parameters{Difficulty: "hard", Questions: intPtr(3)},
			TeacherID:  1,
		},
		{
			Title:      "Тема 3: Теоремы",
			Template:   "Докажите: {theorem}",
			Parameters: topic.Parameters{Difficulty: "easy", Limit: intPtr(2)},
			TeacherID:  1,
		},
	}
	for _, tpc := range seedTopics {
		if _, err := topics.CreateTopic(tpc); err != nil {
			return errors.Wrapf(err, "seeding topic %s", tpc.Title)
		}
	}

	db.task.Lock()
	for id := 1; id <= 3; id++ {
		db.task.table[id] = catalog.Task{ID: id, Title: fmt.Sprintf("Задание %d", id)}
	}
	db.task.Unlock()

	return nil
}
