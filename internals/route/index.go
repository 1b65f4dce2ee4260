// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asgRoute "kelasku_backend/internals/features/school/assignments/route"
	classRoute "kelasku_backend/internals/features/school/classes/route"
	sessionRoute "kelasku_backend/internals/features/school/live_sessions/route"
	ttRoute "kelasku_backend/internals/features/school/timetable/route"
	authRoute "kelasku_backend/internals/features/users/auth/route"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan semua endpoint.
//
//	/api/auth/*  → publik (register/login/logout)
//	/api/u/*     → privat, role student
//	/api/t/*     → privat, role teacher
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🔓 Publik
	authRoute.AuthRoutes(api, db)

	// 🔒 Privat (JWT)
	authRoute.MeRoutes(api, db)

	student := api.Group("/u", authMiddleware.AuthMiddleware())
	classRoute.ClassroomStudentRoutes(student, db)
	ttRoute.TimetableStudentRoutes(student, db)
	sessionRoute.SessionStudentRoutes(student, db)
	asgRoute.AssignmentStudentRoutes(student, db)

	teacher := api.Group("/t", authMiddleware.AuthMiddleware())
	classRoute.ClassroomTeacherRoutes(teacher, db)
	ttRoute.TimetableTeacherRoutes(teacher, db)
	sessionRoute.SessionTeacherRoutes(teacher, db)
	asgRoute.AssignmentTeacherRoutes(teacher, db)
}
