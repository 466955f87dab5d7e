package controller

import (
	"errors"

	"course_platform_backend/internal/service"
	"course_platform_backend/internal/util"
	"course_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// GetUserEnrollments godoc
// @Summary List a user's enrollments joined with their courses
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=[]model.EnrollmentWithCourse}
// @Failure 403 {object} util.Response
// @Router /users/{id}/enrollments [get]
func (c *EnrollmentController) GetUserEnrollments(ctx *gin.Context) {
	userID, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, "User not found")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != userID {
		util.Forbidden(ctx)
		return
	}

	util.Success(ctx, c.EnrollmentService.ListForUser(userID))
}

// swagger:model CreateEnrollmentRequest
type CreateEnrollmentRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	CourseID uint `json:"courseId" binding:"required"`
}

// CreateEnrollment godoc
// @Summary Enroll a user in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateEnrollmentRequest true "enrollment payload"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response "malformed payload or already enrolled"
// @Failure 404 {object} util.Response
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid enrollment data")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != req.UserID {
		util.Forbidden(ctx)
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(req.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.BadRequest(ctx, "Already enrolled in this course")
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "Course not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.EnrollmentCounter.Inc()
	util.Success(ctx, enrollment)
}

// CheckEnrollment godoc
// @Summary Check whether a user is enrolled in a course
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=object}
// @Router /enrollments/check/{userId}/{courseId} [get]
func (c *EnrollmentController) CheckEnrollment(ctx *gin.Context) {
	userID, okUser := util.ParseID(ctx.Param("userId"))
	courseID, okCourse := util.ParseID(ctx.Param("courseId"))
	if !okUser || !okCourse {
		util.NotFound(ctx, "Enrollment not found")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != userID {
		util.Forbidden(ctx)
		return
	}

	util.Success(ctx, gin.H{"isEnrolled": c.EnrollmentService.IsEnrolled(userID, courseID)})
}

// swagger:model CompleteEnrollmentRequest
type CompleteEnrollmentRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	CourseID uint `json:"courseId" binding:"required"`
}

// CompleteEnrollment godoc
// @Summary Mark an enrollment completed
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CompleteEnrollmentRequest true "completion payload"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /enrollments/complete [post]
func (c *EnrollmentController) CompleteEnrollment(ctx *gin.Context) {
	var req CompleteEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid enrollment data")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != req.UserID {
		util.Forbidden(ctx)
		return
	}

	enrollment, err := c.EnrollmentService.Complete(req.UserID, req.CourseID)
	if err != nil {
		util.NotFound(ctx, "Enrollment not found")
		return
	}

	util.Success(ctx, enrollment)
}
