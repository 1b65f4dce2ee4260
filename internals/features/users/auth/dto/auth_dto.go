// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/constants"
	model "kelasku_backend/internals/features/users/auth/model"
)

/* =========================================================
   REQUEST: REGISTER
========================================================= */

type RegisterRequest struct {
	UserName     string `json:"user_name"     form:"user_name"     validate:"required,min=2,max=120"`
	UserEmail    string `json:"user_email"    form:"user_email"    validate:"required,email,max=120"`
	UserPassword string `json:"user_password" form:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role"     form:"user_role"     validate:"omitempty,oneof=teacher student"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
	r.UserRole = strings.ToLower(strings.TrimSpace(r.UserRole))
	if r.UserRole == "" {
		r.UserRole = constants.RoleStudent
	}
}

/* =========================================================
   REQUEST: LOGIN
========================================================= */

type LoginRequest struct {
	UserEmail    string `json:"user_email"    form:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" form:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

/* =========================================================
   RESPONSE
========================================================= */

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserCreatedAt: m.UserCreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
