package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/* =========================================
   Model: assignments
========================================= */
type AssignmentModel struct {
	// PK
	AssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`

	AssignmentClassID   uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_class_id" json:"assignment_class_id"`
	AssignmentTeacherID uuid.UUID `gorm:"type:uuid;not null;column:assignment_teacher_id" json:"assignment_teacher_id"`

	AssignmentTitle       string `gorm:"type:varchar(150);not null;column:assignment_title" json:"assignment_title"`
	AssignmentDescription string `gorm:"type:text;column:assignment_description" json:"assignment_description,omitempty"`

	// URL lampiran (gambar/berkas), array Postgres
	AssignmentAttachments pq.StringArray `gorm:"type:text[];column:assignment_attachments" json:"assignment_attachments,omitempty"`

	AssignmentDueAt *time.Time `gorm:"type:timestamptz;column:assignment_due_at" json:"assignment_due_at,omitempty"`

	AssignmentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:assignment_created_at" json:"assignment_created_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }
