package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	sessionctrl "kelasku_backend/internals/features/school/live_sessions/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func SessionStudentRoutes(student fiber.Router, db *gorm.DB) {
	h := sessionctrl.NewSessionController(db)

	grp := student.Group("/sessions",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("live session"), constants.RoleStudent),
	)
	{
		grp.Post("/:token/join", h.JoinSession)
		grp.Post("/:token/leave", h.LeaveSession)
	}
}
