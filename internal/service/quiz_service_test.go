package service

import (
	"testing"

	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizFixture() (*QuizService, *model.Quiz) {
	quizRepo := repository.NewQuizRepository()
	quiz := quizRepo.Create(&model.Quiz{
		LessonID: 1,
		Title:    "Basics",
		Questions: []model.QuizQuestion{
			{Question: "q1", Options: []string{"a", "b"}, CorrectAnswer: 1},
			{Question: "q2", Options: []string{"a", "b"}, CorrectAnswer: 0},
		},
	})
	return NewQuizService(quizRepo, repository.NewQuizResultRepository()), quiz
}

func TestSubmitScoring(t *testing.T) {
	svc, quiz := newQuizFixture()

	result, err := svc.Submit(1, quiz.ID, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)

	result, err = svc.Submit(1, quiz.ID, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 50, result.Score)

	result, err = svc.Submit(1, quiz.ID, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
}

func TestSubmitAnswerCountMismatch(t *testing.T) {
	svc, quiz := newQuizFixture()

	_, err := svc.Submit(1, quiz.ID, []int{1})
	assert.ErrorIs(t, err, util.ErrAnswerCountMismatch)

	_, err = svc.Submit(1, quiz.ID, []int{1, 0, 1})
	assert.ErrorIs(t, err, util.ErrAnswerCountMismatch)
}

func TestSubmitUnknownQuiz(t *testing.T) {
	svc, _ := newQuizFixture()
	_, err := svc.Submit(1, 99, []int{1, 0})
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestResultForUserAndQuizReturnsLatest(t *testing.T) {
	svc, quiz := newQuizFixture()

	_, err := svc.Submit(1, quiz.ID, []int{0, 1})
	require.NoError(t, err)
	_, err = svc.Submit(1, quiz.ID, []int{1, 0})
	require.NoError(t, err)

	latest, err := svc.ResultForUserAndQuiz(1, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, latest.Score)
}

func TestByLessonUnknown(t *testing.T) {
	svc, _ := newQuizFixture()
	_, err := svc.ByLesson(42)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}
