package userservice

import (
	"time"

	"assetdesk/models"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Email        string      `json:"email" db:"email"`
	PasswordHash string      `json:"-" db:"password_hash"`
	FirstName    string      `json:"firstName" db:"first_name"`
	LastName     string      `json:"lastName" db:"last_name"`
	Role         models.Role `json:"role" db:"role"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	ArchivedAt   *time.Time  `json:"-" db:"archived_at"`
}

type RegisterReq struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role,omitempty"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRes struct {
	UserID       string `json:"userId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type ProfileRes struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      models.Role `json:"role"`
}
