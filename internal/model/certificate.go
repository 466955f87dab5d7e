package model

import "time"

// Certificate explicit award record, not auto-issued on completion.
// swagger:model Certificate
type Certificate struct {
	ID       uint      `json:"id"`
	UserID   uint      `json:"userId"`
	CourseID uint      `json:"courseId"`
	IssuedAt time.Time `json:"issuedAt"`
}

// swagger:model CertificateWithCourse
type CertificateWithCourse struct {
	Certificate
	Course Course `json:"course"`
}
