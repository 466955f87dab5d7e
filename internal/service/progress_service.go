package service

import (
	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	LessonRepo   *repository.LessonRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, lessonRepo *repository.LessonRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		LessonRepo:   lessonRepo,
	}
}

func (s *ProgressService) SetLessonProgress(userID, lessonID uint, completed bool) (*model.LessonProgress, error) {
	if _, exists := s.LessonRepo.FindByID(lessonID); !exists {
		return nil, util.ErrLessonNotFound
	}
	return s.ProgressRepo.Upsert(userID, lessonID, completed), nil
}

// CourseProgress loads the user's progress rows first and counts completions
// against the course's lesson ids synchronously.
func (s *ProgressService) CourseProgress(userID, courseID uint) model.CourseProgress {
	lessons := s.LessonRepo.FindByCourse(courseID)

	completedLessons := make(map[uint]bool)
	for _, p := range s.ProgressRepo.FindByUser(userID) {
		if p.Completed {
			completedLessons[p.LessonID] = true
		}
	}

	completed := 0
	for _, lesson := range lessons {
		if completedLessons[lesson.ID] {
			completed++
		}
	}

	return model.CourseProgress{Completed: completed, Total: len(lessons)}
}
