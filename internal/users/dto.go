package users

import (
	"time"

	"github.com/devfolio/devfolio-backend/pkg/db/models"
)

// UserDTO is the transport shape returned by the API.
type UserDTO struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Username string
	Email    string
}

// UpdateUserDTO carries the optional fields of a partial update. Nil fields
// are left untouched.
type UpdateUserDTO struct {
	Username *string
	Email    *string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Username: c.Username,
		Email:    c.Email,
	}
}
