package model

import "time"

// Enrollment links a user to a course. CompletedAt is nil while the course
// is in progress; the only transition is enrolled -> completed.
// swagger:model Enrollment
type Enrollment struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"userId"`
	CourseID    uint       `json:"courseId"`
	EnrolledAt  time.Time  `json:"enrolledAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// EnrollmentWithCourse is the joined view returned for a user's enrollments.
// swagger:model EnrollmentWithCourse
type EnrollmentWithCourse struct {
	Enrollment
	Course Course `json:"course"`
}
