// internals/features/school/classes/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	classctrl "kelasku_backend/internals/features/school/classes/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func ClassroomTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	h := classctrl.NewClassroomController(db)

	grp := teacher.Group("/classes",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("kelas"), constants.RoleTeacher),
	)
	{
		grp.Post("/", h.CreateClassroom)
		grp.Get("/", h.TeacherClassrooms)
		grp.Delete("/:id", h.DeleteClassroom)
	}
}
