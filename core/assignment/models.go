package assignment

// GeneratedTask is the per-(user,topic) derived content returned to a learner
// attempting a topic. Once generated it is stable for the process lifetime.
type GeneratedTask struct {
	ID        int    `json:"id"` // the topic id
	Title     string `json:"title"`
	Content   string `json:"content"`
	TeacherID int    `json:"teacherId"`
}

// Result is the outcome of grading a submitted answer.
type Result struct {
	IsCorrect bool `json:"isCorrect"`
}

// defaultContent is returned for topics the content table does not know.
const defaultContent = "Неизвестное задание"

// DefaultTaskContent maps a topic id to its canned task body. It stands in
// for an external generation model; content is topic-determined, not
// user-personalized.
var DefaultTaskContent = map[int]string{
	1: "Решите уравнение: x^2 - 4 = 0",
	2: `Напишите программу на Python, которая выводит "Hello, World!"`,
	3: "Докажите теорему Пифагора",
}

// DefaultAnswerKeys maps a topic id to its single canonical answer.
// Topics with no entry always grade as incorrect.
var DefaultAnswerKeys = map[int]string{
	1: "x = 2, x = -2",
	2: `print("Hello, World!")`,
	3: "By Pythagorean theorem, a^2 + b^2 = c^2",
}
