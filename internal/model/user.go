package model

import "time"

// swagger:model User
type User struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Password      string    `json:"-"` // bcrypt digest, never serialized
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Bio           string    `json:"bio"`
	LearningGoals []string  `json:"learningGoals"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PublicUser is the response projection of a user. Controllers build it so
// the digest can never leak through a serializer change on User.
// swagger:model PublicUser
type PublicUser struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Bio           string    `json:"bio"`
	LearningGoals []string  `json:"learningGoals"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Bio:           u.Bio,
		LearningGoals: u.LearningGoals,
		CreatedAt:     u.CreatedAt,
	}
}
