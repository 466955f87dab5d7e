package controller

import (
	"errors"

	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/service"
	"course_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetUser godoc
// @Summary Fetch a user profile
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=model.PublicUser}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, "User not found")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != id {
		util.Forbidden(ctx)
		return
	}

	user, err := c.UserService.Get(id)
	if err != nil {
		util.NotFound(ctx, "User not found")
		return
	}

	util.Success(ctx, user.Public())
}

// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Email         *string   `json:"email" binding:"omitempty,email"`
	FirstName     *string   `json:"firstName"`
	LastName      *string   `json:"lastName"`
	Bio           *string   `json:"bio"`
	LearningGoals *[]string `json:"learningGoals"`
}

// UpdateUser godoc
// @Summary Partially update a user profile
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Param body body UpdateUserRequest true "fields to merge"
// @Success 200 {object} util.Response{data=model.PublicUser}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, "User not found")
		return
	}

	if claims := util.GetUserFromContext(ctx); claims == nil || claims.UserID != id {
		util.Forbidden(ctx)
		return
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(id, repository.UserUpdate{
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Bio:           req.Bio,
		LearningGoals: req.LearningGoals,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrEmailRegistered):
			util.BadRequest(ctx, "Email already registered")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user.Public())
}
