package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================
   Model: classrooms
========================================= */

type ClassroomModel struct {
	// PK
	ClassroomID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classroom_id" json:"classroom_id"`

	// Owner (teacher)
	ClassroomTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:classroom_teacher_id" json:"classroom_teacher_id"`

	ClassroomName    string `gorm:"type:varchar(200);not null;column:classroom_name" json:"classroom_name"`
	ClassroomSubject string `gorm:"type:varchar(200);not null;default:'';column:classroom_subject" json:"classroom_subject"`

	// Kode join 6 karakter; unik global, immutable setelah terbit
	ClassroomCode string `gorm:"type:varchar(6);not null;uniqueIndex:uq_classrooms_code;column:classroom_code" json:"classroom_code"`

	// Audit. Delete kelas = hard delete supaya cascade FK di store ikut jalan
	// (entries, sessions, attendances, assignments milik kelas ini).
	ClassroomCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:classroom_created_at" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:classroom_updated_at" json:"classroom_updated_at"`
}

func (ClassroomModel) TableName() string { return "classrooms" }
