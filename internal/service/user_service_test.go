package service

import (
	"testing"

	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGet(t *testing.T) {
	repo := repository.NewUserRepository()
	created := repo.Create(&model.User{Email: "ada@example.com"})
	svc := NewUserService(repo)

	user, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	_, err = svc.Get(99)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUserUpdateEmailConflict(t *testing.T) {
	repo := repository.NewUserRepository()
	ada := repo.Create(&model.User{Email: "ada@example.com"})
	repo.Create(&model.User{Email: "grace@example.com"})
	svc := NewUserService(repo)

	taken := "grace@example.com"
	_, err := svc.Update(ada.ID, repository.UserUpdate{Email: &taken})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	// Re-submitting your own email is not a conflict.
	own := "ada@example.com"
	updated, err := svc.Update(ada.ID, repository.UserUpdate{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", updated.Email)
}

func TestUserUpdateUnknown(t *testing.T) {
	svc := NewUserService(repository.NewUserRepository())
	bio := "x"
	_, err := svc.Update(42, repository.UserUpdate{Bio: &bio})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
