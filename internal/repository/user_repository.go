package repository

import (
	"sync"
	"time"

	"course_platform_backend/internal/model"
)

type UserRepository struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]*model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID: 1,
		users:  make(map[uint]*model.User),
	}
}

// UserUpdate carries the partial fields of an update. Nil means "leave
// unchanged" (shallow merge).
type UserUpdate struct {
	Email         *string
	Password      *string
	FirstName     *string
	LastName      *string
	Bio           *string
	LearningGoals *[]string
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.LearningGoals = append([]string(nil), u.LearningGoals...)
	return &c
}

// Create assigns the next id, stamps the creation time and inserts. It does
// not check email uniqueness; that is the auth service's job.
func (r *UserRepository) Create(user *model.User) *model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneUser(user)
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++

	r.users[stored.ID] = stored
	return cloneUser(stored)
}

func (r *UserRepository) FindByID(id uint) (*model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, false
	}
	return cloneUser(user), true
}

func (r *UserRepository) FindByEmail(email string) (*model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user), true
		}
	}
	return nil, false
}

// Update merges the given fields into the record. Last write wins.
func (r *UserRepository) Update(id uint, updates UserUpdate) (*model.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, false
	}

	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.Password != nil {
		user.Password = *updates.Password
	}
	if updates.FirstName != nil {
		user.FirstName = *updates.FirstName
	}
	if updates.LastName != nil {
		user.LastName = *updates.LastName
	}
	if updates.Bio != nil {
		user.Bio = *updates.Bio
	}
	if updates.LearningGoals != nil {
		user.LearningGoals = append([]string(nil), (*updates.LearningGoals)...)
	}

	return cloneUser(user), true
}
