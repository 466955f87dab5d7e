package controller

import (
	"errors"

	"course_platform_backend/internal/service"
	"course_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

// GetUserCertificates godoc
// @Summary List a user's certificates joined with their courses
// @Tags certificates
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=[]model.CertificateWithCourse}
// @Failure 403 {object} util.Response
// @Router /users/{id}/certificates [get]
func (c *CertificateController) GetUserCertificates(ctx *gin.Context) {
	userID, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, "User not found")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != userID {
		util.Forbidden(ctx)
		return
	}

	util.Success(ctx, c.CertificateService.ListForUser(userID))
}

// swagger:model CreateCertificateRequest
type CreateCertificateRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	CourseID uint `json:"courseId" binding:"required"`
}

// CreateCertificate godoc
// @Summary Issue a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateCertificateRequest true "certificate payload"
// @Success 200 {object} util.Response{data=model.Certificate}
// @Failure 404 {object} util.Response
// @Router /certificates [post]
func (c *CertificateController) CreateCertificate(ctx *gin.Context) {
	var req CreateCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid certificate data")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != req.UserID {
		util.Forbidden(ctx)
		return
	}

	certificate, err := c.CertificateService.Issue(req.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "Course not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, certificate)
}
