package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/users/auth/dto"
	"kelasku_backend/internals/features/users/auth/model"
	"kelasku_backend/internals/features/users/auth/service"
	helper "kelasku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

/* =========================== REGISTER =========================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := &model.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: string(hash),
		UserRole:     req.UserRole,
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "uq_users_email") || strings.Contains(low, "duplicate") {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.FromModel(m))
}

/* ============================ LOGIN ============================ */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("user_email = ?", req.UserEmail).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := service.CreateAccessToken(&user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// cookie fallback untuk klien browser
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(service.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromModel(&user),
	})
}

/* ============================ LOGOUT ============================ */
// POST /api/auth/logout
// Token stateless; logout cukup hapus cookie di sisi server.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ============================== ME ============================== */
// GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonOK(c, "ok", dto.FromModel(&user))
}
