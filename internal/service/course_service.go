package service

import (
	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	LessonRepo *repository.LessonRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, lessonRepo *repository.LessonRepository) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		LessonRepo: lessonRepo,
	}
}

func (s *CourseService) List() []model.Course {
	return s.CourseRepo.FindAll()
}

func (s *CourseService) Get(id uint) (*model.Course, error) {
	course, exists := s.CourseRepo.FindByID(id)
	if !exists {
		return nil, util.ErrCourseNotFound
	}
	return course, nil
}

// LessonsForCourse display order, ascending by orderIndex. An unknown course
// yields an empty list, same as a course without lessons.
func (s *CourseService) LessonsForCourse(courseID uint) []model.Lesson {
	return s.LessonRepo.FindByCourse(courseID)
}

func (s *CourseService) CreateCourse(course *model.Course) *model.Course {
	return s.CourseRepo.Create(course)
}

func (s *CourseService) CreateLesson(lesson *model.Lesson) (*model.Lesson, error) {
	if _, exists := s.CourseRepo.FindByID(lesson.CourseID); !exists {
		return nil, util.ErrCourseNotFound
	}
	return s.LessonRepo.Create(lesson), nil
}
