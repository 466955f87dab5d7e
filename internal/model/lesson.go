package model

import "time"

// swagger:model Lesson
type Lesson struct {
	ID          uint      `json:"id"`
	CourseID    uint      `json:"courseId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoURL    string    `json:"videoUrl"` // external player video id
	Duration    string    `json:"duration"`
	OrderIndex  int       `json:"orderIndex"`
	ModuleTitle string    `json:"moduleTitle"`
	CreatedAt   time.Time `json:"createdAt"`
}
