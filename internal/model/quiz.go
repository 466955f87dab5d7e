package model

import "time"

// QuizQuestion CorrectAnswer indexes into Options.
// swagger:model QuizQuestion
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Quiz at most one per lesson.
// swagger:model Quiz
type Quiz struct {
	ID        uint           `json:"id"`
	LessonID  uint           `json:"lessonId"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
	CreatedAt time.Time      `json:"createdAt"`
}
