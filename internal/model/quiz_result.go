package model

import "time"

// QuizResult one graded attempt. Append-only, resubmission adds a record.
// swagger:model QuizResult
type QuizResult struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"userId"`
	QuizID         uint      `json:"quizId"`
	Score          int       `json:"score"` // percentage, 0-100
	TotalQuestions int       `json:"totalQuestions"`
	Answers        []int     `json:"answers"` // selected option index per question
	CompletedAt    time.Time `json:"completedAt"`
}
