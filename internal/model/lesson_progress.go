package model

import "time"

// LessonProgress one record per (userId, lessonId), upsert semantics.
// swagger:model LessonProgress
type LessonProgress struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"userId"`
	LessonID    uint       `json:"lessonId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

// CourseProgress completion ratio of one course for one user.
// swagger:model CourseProgress
type CourseProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}
