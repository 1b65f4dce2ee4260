package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctrl "kelasku_backend/internals/features/users/auth/controller"
	middlewares "kelasku_backend/internals/middlewares"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint publik register/login/logout.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	h := authctrl.NewAuthController(db)

	grp := api.Group("/auth")
	{
		grp.Post("/register", middlewares.RegisterRateLimiter(), h.Register)
		grp.Post("/login", middlewares.LoginRateLimiter(), h.Login)
		grp.Post("/logout", h.Logout)
	}
}

// MeRoutes: profil user login; JWT dipasang per-route supaya
// endpoint publik di group yang sama tidak ikut keguard.
func MeRoutes(api fiber.Router, db *gorm.DB) {
	h := authctrl.NewAuthController(db)
	api.Get("/me", authMiddleware.AuthMiddleware(), h.Me)
}
