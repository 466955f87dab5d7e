package repository

import (
	"sort"
	"sync"
	"time"

	"course_platform_backend/internal/model"
)

type LessonRepository struct {
	mu      sync.RWMutex
	nextID  uint
	lessons map[uint]*model.Lesson
}

func NewLessonRepository() *LessonRepository {
	return &LessonRepository{
		nextID:  1,
		lessons: make(map[uint]*model.Lesson),
	}
}

func (r *LessonRepository) Create(lesson *model.Lesson) *model.Lesson {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *lesson
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++

	r.lessons[stored.ID] = &stored

	out := stored
	return &out
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lesson, ok := r.lessons[id]
	if !ok {
		return nil, false
	}
	out := *lesson
	return &out, true
}

// FindByCourse returns the course's lessons ascending by orderIndex. The
// sort is stable: equal orderIndex values keep insertion (id) order.
func (r *LessonRepository) FindByCourse(courseID uint) []model.Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Lesson, 0)
	for _, lesson := range r.lessons {
		if lesson.CourseID == courseID {
			out = append(out, *lesson)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}
