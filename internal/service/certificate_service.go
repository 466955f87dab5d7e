package service

import (
	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"
)

type CertificateService struct {
	CertificateRepo *repository.CertificateRepository
	CourseRepo      *repository.CourseRepository
	UserRepo        *repository.UserRepository
}

func NewCertificateService(certificateRepo *repository.CertificateRepository, courseRepo *repository.CourseRepository, userRepo *repository.UserRepository) *CertificateService {
	return &CertificateService{
		CertificateRepo: certificateRepo,
		CourseRepo:      courseRepo,
		UserRepo:        userRepo,
	}
}

// Issue awards a certificate explicitly. Completion is not required and
// certificates are never auto-issued.
func (s *CertificateService) Issue(userID, courseID uint) (*model.Certificate, error) {
	if _, exists := s.UserRepo.FindByID(userID); !exists {
		return nil, util.ErrUserNotFound
	}
	if _, exists := s.CourseRepo.FindByID(courseID); !exists {
		return nil, util.ErrCourseNotFound
	}
	return s.CertificateRepo.Create(userID, courseID), nil
}

func (s *CertificateService) ListForUser(userID uint) []model.CertificateWithCourse {
	certificates := s.CertificateRepo.FindByUser(userID)

	out := make([]model.CertificateWithCourse, 0, len(certificates))
	for _, cert := range certificates {
		joined := model.CertificateWithCourse{Certificate: cert}
		if course, exists := s.CourseRepo.FindByID(cert.CourseID); exists {
			joined.Course = *course
		}
		out = append(out, joined)
	}
	return out
}
