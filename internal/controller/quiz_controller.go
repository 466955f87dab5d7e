package controller

import (
	"errors"

	"course_platform_backend/internal/service"
	"course_platform_backend/internal/util"
	"course_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetLessonQuiz godoc
// @Summary Fetch the quiz attached to a lesson
// @Tags quizzes
// @Produce json
// @Param lessonId path int true "lesson id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /lessons/{lessonId}/quiz [get]
func (c *QuizController) GetLessonQuiz(ctx *gin.Context) {
	lessonID, ok := util.ParseID(ctx.Param("lessonId"))
	if !ok {
		util.NotFound(ctx, "Quiz not found")
		return
	}

	quiz, err := c.QuizService.ByLesson(lessonID)
	if err != nil {
		util.NotFound(ctx, "Quiz not found")
		return
	}

	util.Success(ctx, quiz)
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	UserID  uint  `json:"userId" binding:"required"`
	QuizID  uint  `json:"quizId" binding:"required"`
	Answers []int `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Grade and store a quiz attempt
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitQuizRequest true "selected option index per question"
// @Success 200 {object} util.Response{data=model.QuizResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid quiz result data")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != req.UserID {
		util.Forbidden(ctx)
		return
	}

	result, err := c.QuizService.Submit(req.UserID, req.QuizID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, "Quiz not found")
		case errors.Is(err, util.ErrAnswerCountMismatch):
			util.BadRequest(ctx, "Invalid quiz result data")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.QuizSubmissionCounter.Inc()
	util.Success(ctx, result)
}
