package model

import "time"

// swagger:model Course
type Course struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Instructor   string    `json:"instructor"`
	Price        int       `json:"price"`
	Rating       int       `json:"rating"` // tenths of a star, 48 == 4.8
	StudentCount int       `json:"studentCount"`
	Category     string    `json:"category"`
	Level        string    `json:"level"`
	Duration     string    `json:"duration"`
	LessonCount  int       `json:"lessonCount"`
	ImageURL     string    `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}
