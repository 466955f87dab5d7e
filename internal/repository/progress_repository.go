package repository

import (
	"sort"
	"sync"
	"time"

	"course_platform_backend/internal/model"
)

type userLessonKey struct {
	userID   uint
	lessonID uint
}

type ProgressRepository struct {
	mu       sync.RWMutex
	nextID   uint
	progress map[uint]*model.LessonProgress
	byPair   map[userLessonKey]uint
}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{
		nextID:   1,
		progress: make(map[uint]*model.LessonProgress),
		byPair:   make(map[userLessonKey]uint),
	}
}

// Upsert is the single logical set-progress operation. The lookup and the
// write share one lock, so repeated calls for the same (userId, lessonId)
// can never produce a second record. completed=true stamps completedAt,
// completed=false clears it.
func (r *ProgressRepository) Upsert(userID, lessonID uint, completed bool) *model.LessonProgress {
	r.mu.Lock()
	defer r.mu.Unlock()

	var completedAt *time.Time
	if completed {
		now := time.Now()
		completedAt = &now
	}

	key := userLessonKey{userID: userID, lessonID: lessonID}
	if id, exists := r.byPair[key]; exists {
		p := r.progress[id]
		p.Completed = completed
		p.CompletedAt = completedAt
		out := *p
		return &out
	}

	stored := &model.LessonProgress{
		ID:          r.nextID,
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   completed,
		CompletedAt: completedAt,
	}
	r.nextID++

	r.progress[stored.ID] = stored
	r.byPair[key] = stored.ID

	out := *stored
	return &out
}

func (r *ProgressRepository) FindByUserAndLesson(userID, lessonID uint) (*model.LessonProgress, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byPair[userLessonKey{userID: userID, lessonID: lessonID}]
	if !exists {
		return nil, false
	}
	out := *r.progress[id]
	return &out, true
}

func (r *ProgressRepository) FindByUser(userID uint) []model.LessonProgress {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.LessonProgress, 0)
	for _, p := range r.progress {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
