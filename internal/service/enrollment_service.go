package service

import (
	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

// Enroll creates the enrollment. Duplicate detection is atomic inside the
// repository, there is no check-then-create window.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*model.Enrollment, error) {
	if _, exists := s.CourseRepo.FindByID(courseID); !exists {
		return nil, util.ErrCourseNotFound
	}
	return s.EnrollmentRepo.Create(userID, courseID)
}

// ListForUser joins each enrollment with its course. Courses are never
// deleted, so a missing course would be an invariant violation; the join
// degrades to a zero-value course rather than failing the whole listing.
func (s *EnrollmentService) ListForUser(userID uint) []model.EnrollmentWithCourse {
	enrollments := s.EnrollmentRepo.FindByUser(userID)

	out := make([]model.EnrollmentWithCourse, 0, len(enrollments))
	for _, e := range enrollments {
		joined := model.EnrollmentWithCourse{Enrollment: e}
		if course, exists := s.CourseRepo.FindByID(e.CourseID); exists {
			joined.Course = *course
		}
		out = append(out, joined)
	}
	return out
}

func (s *EnrollmentService) IsEnrolled(userID, courseID uint) bool {
	return s.EnrollmentRepo.IsEnrolled(userID, courseID)
}

func (s *EnrollmentService) Complete(userID, courseID uint) (*model.Enrollment, error) {
	enrollment, exists := s.EnrollmentRepo.Complete(userID, courseID)
	if !exists {
		return nil, util.ErrEnrollmentNotFound
	}
	return enrollment, nil
}
