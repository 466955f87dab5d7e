package repository

import (
	"sort"
	"sync"
	"time"

	"course_platform_backend/internal/model"
	"course_platform_backend/internal/util"
)

type userCourseKey struct {
	userID   uint
	courseID uint
}

type EnrollmentRepository struct {
	mu          sync.RWMutex
	nextID      uint
	enrollments map[uint]*model.Enrollment
	byPair      map[userCourseKey]uint
}

func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{
		nextID:      1,
		enrollments: make(map[uint]*model.Enrollment),
		byPair:      make(map[userCourseKey]uint),
	}
}

// Create inserts a new enrollment. The duplicate check and the insert happen
// under one lock so the (userId, courseId) uniqueness invariant holds under
// concurrent requests.
func (r *EnrollmentRepository) Create(userID, courseID uint) (*model.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userCourseKey{userID: userID, courseID: courseID}
	if _, exists := r.byPair[key]; exists {
		return nil, util.ErrAlreadyEnrolled
	}

	stored := &model.Enrollment{
		ID:         r.nextID,
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	r.nextID++

	r.enrollments[stored.ID] = stored
	r.byPair[key] = stored.ID

	out := *stored
	return &out, nil
}

func (r *EnrollmentRepository) FindByUser(userID uint) []model.Enrollment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Enrollment, 0)
	for _, e := range r.enrollments {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *EnrollmentRepository) IsEnrolled(userID, courseID uint) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byPair[userCourseKey{userID: userID, courseID: courseID}]
	return exists
}

// Complete stamps completedAt on the pair's enrollment. The transition is
// one-directional: a second call keeps the original timestamp.
func (r *EnrollmentRepository) Complete(userID, courseID uint) (*model.Enrollment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, exists := r.byPair[userCourseKey{userID: userID, courseID: courseID}]
	if !exists {
		return nil, false
	}

	e := r.enrollments[id]
	if e.CompletedAt == nil {
		now := time.Now()
		e.CompletedAt = &now
	}

	out := *e
	return &out, true
}
