package controller

import (
	"errors"

	"course_platform_backend/internal/service"
	"course_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// swagger:model LessonProgressRequest
type LessonProgressRequest struct {
	UserID    uint  `json:"userId" binding:"required"`
	LessonID  uint  `json:"lessonId" binding:"required"`
	Completed *bool `json:"completed" binding:"required"`
}

// UpdateLessonProgress godoc
// @Summary Upsert a user's progress on a lesson
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body LessonProgressRequest true "progress payload"
// @Success 200 {object} util.Response{data=model.LessonProgress}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /progress/lesson [post]
func (c *ProgressController) UpdateLessonProgress(ctx *gin.Context) {
	var req LessonProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid progress data")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != req.UserID {
		util.Forbidden(ctx)
		return
	}

	progress, err := c.ProgressService.SetLessonProgress(req.UserID, req.LessonID, *req.Completed)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, "Lesson not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}

// GetCourseProgress godoc
// @Summary Completion ratio for a user and course
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=model.CourseProgress}
// @Router /progress/course/{userId}/{courseId} [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	userID, okUser := util.ParseID(ctx.Param("userId"))
	courseID, okCourse := util.ParseID(ctx.Param("courseId"))
	if !okUser || !okCourse {
		util.NotFound(ctx, "Course not found")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != userID {
		util.Forbidden(ctx)
		return
	}

	util.Success(ctx, c.ProgressService.CourseProgress(userID, courseID))
}
