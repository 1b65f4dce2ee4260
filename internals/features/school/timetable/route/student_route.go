package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	ttctrl "kelasku_backend/internals/features/school/timetable/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func TimetableStudentRoutes(student fiber.Router, db *gorm.DB) {
	h := ttctrl.NewTimetableController(db)

	grp := student.Group("/timetable",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("timetable"), constants.RoleStudent),
	)
	{
		grp.Get("/grid", h.StudentGrid)
	}
}
