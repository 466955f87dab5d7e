package repository

import (
	"sync"
	"time"

	"course_platform_backend/internal/model"
)

// QuizResultRepository is append-only: every submission becomes a new
// record, there is no uniqueness on (userId, quizId).
type QuizResultRepository struct {
	mu      sync.RWMutex
	nextID  uint
	results map[uint]*model.QuizResult
}

func NewQuizResultRepository() *QuizResultRepository {
	return &QuizResultRepository{
		nextID:  1,
		results: make(map[uint]*model.QuizResult),
	}
}

func cloneQuizResult(qr *model.QuizResult) *model.QuizResult {
	c := *qr
	c.Answers = append([]int(nil), qr.Answers...)
	return &c
}

func (r *QuizResultRepository) Create(result *model.QuizResult) *model.QuizResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneQuizResult(result)
	stored.ID = r.nextID
	stored.CompletedAt = time.Now()
	r.nextID++

	r.results[stored.ID] = stored
	return cloneQuizResult(stored)
}

// FindByUserAndQuiz returns the latest attempt for the pair.
func (r *QuizResultRepository) FindByUserAndQuiz(userID, quizID uint) (*model.QuizResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *model.QuizResult
	for _, result := range r.results {
		if result.UserID != userID || result.QuizID != quizID {
			continue
		}
		if latest == nil || result.ID > latest.ID {
			latest = result
		}
	}
	if latest == nil {
		return nil, false
	}
	return cloneQuizResult(latest), true
}
