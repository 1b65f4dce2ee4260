package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	assignmentModel "kelasku_backend/internals/features/school/assignments/model"
	classModel "kelasku_backend/internals/features/school/classes/model"
	sessionModel "kelasku_backend/internals/features/school/live_sessions/model"
	timetableModel "kelasku_backend/internals/features/school/timetable/model"
	userModel "kelasku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kelasku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate semua model + constraint yang tidak bisa
// diekspresikan lewat tag GORM (partial unique index, FK cascade).
func Migrate() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[WARN] pgcrypto: %v", err)
	}

	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassroomModel{},
		&classModel.ClassMemberModel{},
		&timetableModel.TimetableEntryModel{},
		&sessionModel.LiveSessionModel{},
		&sessionModel.SessionAttendanceModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.AssignmentSubmissionModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	// Maks. satu attendance OPEN per (session, student). Guard utama untuk
	// race join ganda; cek aplikasi hanya fast-path.
	mustExec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_session_attendances_open
		ON session_attendances (session_attendance_session_id, session_attendance_student_id)
		WHERE session_attendance_left_at IS NULL`)

	// FK + cascade: Classroom memiliki entries/sessions/members/assignments,
	// LiveSession memiliki attendances, Assignment memiliki submissions.
	addCascadeFK("class_members", "fk_class_members_classroom", "class_member_class_id", "classrooms", "classroom_id")
	addCascadeFK("timetable_entries", "fk_timetable_entries_classroom", "timetable_entry_class_id", "classrooms", "classroom_id")
	addCascadeFK("live_sessions", "fk_live_sessions_classroom", "live_session_class_id", "classrooms", "classroom_id")
	addCascadeFK("session_attendances", "fk_session_attendances_session", "session_attendance_session_id", "live_sessions", "live_session_id")
	addCascadeFK("assignments", "fk_assignments_classroom", "assignment_class_id", "classrooms", "classroom_id")
	addCascadeFK("assignment_submissions", "fk_assignment_submissions_assignment", "assignment_submission_assignment_id", "assignments", "assignment_id")

	log.Println("✅ Migrasi selesai.")
}

func addCascadeFK(table, name, column, refTable, refColumn string) {
	mustExec(fmt.Sprintf(`DO $$ BEGIN
		ALTER TABLE %s ADD CONSTRAINT %s
			FOREIGN KEY (%s) REFERENCES %s(%s) ON DELETE CASCADE;
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		table, name, column, refTable, refColumn))
}

func mustExec(sql string) {
	if err := DB.Exec(sql).Error; err != nil {
		log.Fatalf("❌ Migrasi constraint gagal: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
