package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAlreadyEnrolled     = errors.New("already enrolled in this course")
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
)
