package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================
   Model: session_attendances
========================================= */

// Satu interval join..leave milik satu siswa dalam satu live session.
// Maks. satu record OPEN (left_at NULL) per (session, student) — dijaga
// partial unique index uq_session_attendances_open di migrasi.
type SessionAttendanceModel struct {
	// PK
	SessionAttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:session_attendance_id" json:"session_attendance_id"`

	SessionAttendanceSessionID uuid.UUID `gorm:"type:uuid;not null;index;column:session_attendance_session_id" json:"session_attendance_session_id"`
	SessionAttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:session_attendance_student_id" json:"session_attendance_student_id"`

	SessionAttendanceJoinedAt    time.Time  `gorm:"type:timestamptz;not null;default:now();column:session_attendance_joined_at" json:"session_attendance_joined_at"`
	SessionAttendanceLeftAt      *time.Time `gorm:"type:timestamptz;column:session_attendance_left_at" json:"session_attendance_left_at,omitempty"`
	SessionAttendanceDurationSec *int       `gorm:"column:session_attendance_duration_sec" json:"session_attendance_duration_sec,omitempty"`
}

func (SessionAttendanceModel) TableName() string { return "session_attendances" }

func (m *SessionAttendanceModel) IsOpen() bool { return m.SessionAttendanceLeftAt == nil }
