package controller

import (
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store *repository.Store
}

func NewHealthController(store *repository.Store) *HealthController {
	return &HealthController{Store: store}
}

// HealthCheck godoc
// @Summary Service health
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"store":   "up",
			"courses": len(c.Store.Courses.FindAll()),
		},
	})
}
