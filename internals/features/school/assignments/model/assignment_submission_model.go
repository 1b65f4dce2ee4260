package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================
   Model: assignment_submissions
========================================= */

// Keep-all: submit ulang tidak menimpa, tapi menambah attempt baru.
// (assignment, student, attempt) unik.
type AssignmentSubmissionModel struct {
	// PK
	AssignmentSubmissionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_submission_id" json:"assignment_submission_id"`

	AssignmentSubmissionAssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignment_submissions_attempt;column:assignment_submission_assignment_id" json:"assignment_submission_assignment_id"`
	AssignmentSubmissionStudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignment_submissions_attempt;index;column:assignment_submission_student_id" json:"assignment_submission_student_id"`
	AssignmentSubmissionAttempt      int       `gorm:"not null;default:1;uniqueIndex:uq_assignment_submissions_attempt;column:assignment_submission_attempt" json:"assignment_submission_attempt"`

	AssignmentSubmissionFileURL string `gorm:"type:text;column:assignment_submission_file_url" json:"assignment_submission_file_url,omitempty"`
	AssignmentSubmissionComment string `gorm:"type:text;column:assignment_submission_comment" json:"assignment_submission_comment,omitempty"`

	AssignmentSubmissionSubmittedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:assignment_submission_submitted_at" json:"assignment_submission_submitted_at"`
}

func (AssignmentSubmissionModel) TableName() string { return "assignment_submissions" }
