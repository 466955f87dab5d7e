package service

import (
	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"
	"course_platform_backend/internal/util"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) Get(id uint) (*model.User, error) {
	user, exists := s.UserRepo.FindByID(id)
	if !exists {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

// Update merges the partial fields. An email change is re-checked for
// uniqueness against other users.
func (s *UserService) Update(id uint, updates repository.UserUpdate) (*model.User, error) {
	if updates.Email != nil {
		if other, exists := s.UserRepo.FindByEmail(*updates.Email); exists && other.ID != id {
			return nil, util.ErrEmailRegistered
		}
	}

	user, exists := s.UserRepo.Update(id, updates)
	if !exists {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}
