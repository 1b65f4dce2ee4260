// internals/features/school/assignments/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	asgctrl "kelasku_backend/internals/features/school/assignments/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func AssignmentTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	h := asgctrl.NewAssignmentController(db)

	grp := teacher.Group("/assignments",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("assignment"), constants.RoleTeacher),
	)
	{
		grp.Post("/", h.CreateAssignment)
		grp.Get("/:id/submissions", h.ListSubmissions)
	}
}
