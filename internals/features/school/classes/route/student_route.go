package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	classctrl "kelasku_backend/internals/features/school/classes/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func ClassroomStudentRoutes(student fiber.Router, db *gorm.DB) {
	h := classctrl.NewClassroomController(db)

	grp := student.Group("/classes",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("kelas"), constants.RoleStudent),
	)
	{
		grp.Post("/join", h.JoinClassroom)
		grp.Get("/", h.StudentClassrooms)
	}
}
