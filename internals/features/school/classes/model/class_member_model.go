package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================
   Model: class_members
========================================= */

type ClassMemberModel struct {
	// PK
	ClassMemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_member_id" json:"class_member_id"`

	// (class_id, student_id) unik — tidak boleh join ganda
	ClassMemberClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_members_class_student;column:class_member_class_id" json:"class_member_class_id"`
	ClassMemberStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_members_class_student;index;column:class_member_student_id" json:"class_member_student_id"`

	ClassMemberJoinedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:class_member_joined_at" json:"class_member_joined_at"`
}

func (ClassMemberModel) TableName() string { return "class_members" }
