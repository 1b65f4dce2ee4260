package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"kelasku_backend/internals/configs"
	model "kelasku_backend/internals/features/users/auth/model"
)

const AccessTokenTTL = 24 * time.Hour

// CreateAccessToken menerbitkan JWT dengan klaim user_id, role, user_name.
func CreateAccessToken(u *model.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"role":      u.UserRole,
		"user_name": u.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
