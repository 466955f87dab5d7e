package repository

import (
	"sort"
	"sync"
	"time"

	"course_platform_backend/internal/model"
)

type CourseRepository struct {
	mu      sync.RWMutex
	nextID  uint
	courses map[uint]*model.Course
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		nextID:  1,
		courses: make(map[uint]*model.Course),
	}
}

func (r *CourseRepository) Create(course *model.Course) *model.Course {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *course
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++

	r.courses[stored.ID] = &stored

	out := stored
	return &out
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, false
	}
	out := *course
	return &out, true
}

// FindAll returns the catalog ordered by id so listings are deterministic.
func (r *CourseRepository) FindAll() []model.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Course, 0, len(r.courses))
	for _, course := range r.courses {
		out = append(out, *course)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
