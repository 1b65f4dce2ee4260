// internals/features/school/live_sessions/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	sessionctrl "kelasku_backend/internals/features/school/live_sessions/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func SessionTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	h := sessionctrl.NewSessionController(db)

	guard := authMiddleware.OnlyRoles(constants.RoleErrorTeacher("live session"), constants.RoleTeacher)

	teacher.Post("/classes/:class_id/sessions", guard, h.CreateSession)
	teacher.Post("/sessions/:token/end", guard, h.EndSession)
}
