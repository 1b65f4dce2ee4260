package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	asgctrl "kelasku_backend/internals/features/school/assignments/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func AssignmentStudentRoutes(student fiber.Router, db *gorm.DB) {
	h := asgctrl.NewAssignmentController(db)

	grp := student.Group("/assignments",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("assignment"), constants.RoleStudent),
	)
	{
		grp.Get("/", h.ListForStudent)
		grp.Post("/:id/submit", h.Submit)
	}
}
