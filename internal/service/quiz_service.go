package service

import (
	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"
)

type QuizService struct {
	QuizRepo   *repository.QuizRepository
	ResultRepo *repository.QuizResultRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, resultRepo *repository.QuizResultRepository) *QuizService {
	return &QuizService{
		QuizRepo:   quizRepo,
		ResultRepo: resultRepo,
	}
}

func (s *QuizService) ByLesson(lessonID uint) (*model.Quiz, error) {
	quiz, exists := s.QuizRepo.FindByLesson(lessonID)
	if !exists {
		return nil, util.ErrQuizNotFound
	}
	return quiz, nil
}

// Submit grades the answers server side and appends a result. The score is
// a 0-100 percentage; an out-of-range answer index counts as wrong.
func (s *QuizService) Submit(userID, quizID uint, answers []int) (*model.QuizResult, error) {
	quiz, exists := s.QuizRepo.FindByID(quizID)
	if !exists {
		return nil, util.ErrQuizNotFound
	}

	if len(answers) != len(quiz.Questions) {
		return nil, util.ErrAnswerCountMismatch
	}

	correct := 0
	for i, question := range quiz.Questions {
		if answers[i] == question.CorrectAnswer {
			correct++
		}
	}

	score := 0
	if len(quiz.Questions) > 0 {
		score = correct * 100 / len(quiz.Questions)
	}

	result := &model.QuizResult{
		UserID:         userID,
		QuizID:         quizID,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		Answers:        answers,
	}
	return s.ResultRepo.Create(result), nil
}

func (s *QuizService) ResultForUserAndQuiz(userID, quizID uint) (*model.QuizResult, error) {
	result, exists := s.ResultRepo.FindByUserAndQuiz(userID, quizID)
	if !exists {
		return nil, util.ErrQuizNotFound
	}
	return result, nil
}
