package repository

import (
	"sync"
	"time"

	"course_platform_backend/internal/model"
)

type QuizRepository struct {
	mu      sync.RWMutex
	nextID  uint
	quizzes map[uint]*model.Quiz
}

func NewQuizRepository() *QuizRepository {
	return &QuizRepository{
		nextID:  1,
		quizzes: make(map[uint]*model.Quiz),
	}
}

func cloneQuiz(q *model.Quiz) *model.Quiz {
	c := *q
	c.Questions = make([]model.QuizQuestion, len(q.Questions))
	for i, question := range q.Questions {
		c.Questions[i] = question
		c.Questions[i].Options = append([]string(nil), question.Options...)
	}
	return &c
}

func (r *QuizRepository) Create(quiz *model.Quiz) *model.Quiz {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneQuiz(quiz)
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++

	r.quizzes[stored.ID] = stored
	return cloneQuiz(stored)
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, false
	}
	return cloneQuiz(quiz), true
}

// FindByLesson at most one quiz per lesson in this model.
func (r *QuizRepository) FindByLesson(lessonID uint) (*model.Quiz, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, quiz := range r.quizzes {
		if quiz.LessonID == lessonID {
			return cloneQuiz(quiz), true
		}
	}
	return nil, false
}
