// internals/features/school/timetable/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	ttctrl "kelasku_backend/internals/features/school/timetable/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func TimetableTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	h := ttctrl.NewTimetableController(db)

	grp := teacher.Group("/timetable",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("timetable"), constants.RoleTeacher),
	)
	{
		grp.Post("/", h.AddEntry)
		grp.Get("/:class_id", h.ListForClass)
		grp.Delete("/:id", h.DeleteEntry)
	}
}
