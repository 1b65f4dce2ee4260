package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/school/assignments/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateAssignmentRequest struct {
	ClassID     uuid.UUID `json:"class_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=1,max=150"`
	Description string    `json:"description" validate:"omitempty,max=5000"`
	// RFC3339, opsional
	DueAt       string   `json:"due_at" validate:"omitempty"`
	Attachments []string `json:"attachments" validate:"omitempty,dive,url"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.DueAt = strings.TrimSpace(r.DueAt)
	for i := range r.Attachments {
		r.Attachments[i] = strings.TrimSpace(r.Attachments[i])
	}
}

// ParseDueAt: "" berarti tanpa tenggat.
func (r *CreateAssignmentRequest) ParseDueAt() (*time.Time, error) {
	if r.DueAt == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, r.DueAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type SubmitAssignmentRequest struct {
	FileURL string `json:"file_url" validate:"omitempty,url"`
	Comment string `json:"comment" validate:"omitempty,max=5000"`
}

func (r *SubmitAssignmentRequest) Normalize() {
	r.FileURL = strings.TrimSpace(r.FileURL)
	r.Comment = strings.TrimSpace(r.Comment)
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type AssignmentResponse struct {
	AssignmentID uuid.UUID  `json:"assignment_id"`
	ClassID      uuid.UUID  `json:"class_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Attachments  []string   `json:"attachments,omitempty"`
	DueAt        *time.Time `json:"due_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromAssignmentModel(m *model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: m.AssignmentID,
		ClassID:      m.AssignmentClassID,
		Title:        m.AssignmentTitle,
		Description:  m.AssignmentDescription,
		Attachments:  m.AssignmentAttachments,
		DueAt:        m.AssignmentDueAt,
		CreatedAt:    m.AssignmentCreatedAt,
	}
}

// Item daftar tugas siswa; bawa nama kelas biar FE tidak fetch ulang.
type StudentAssignmentItem struct {
	AssignmentResponse
	ClassroomName string `json:"classroom_name"`
}

type SubmissionResponse struct {
	AssignmentSubmissionID uuid.UUID `json:"assignment_submission_id"`
	AssignmentID           uuid.UUID `json:"assignment_id"`
	StudentID              uuid.UUID `json:"student_id"`
	Attempt                int       `json:"attempt"`
	FileURL                string    `json:"file_url,omitempty"`
	Comment                string    `json:"comment,omitempty"`
	SubmittedAt            time.Time `json:"submitted_at"`
}

func FromSubmissionModel(m *model.AssignmentSubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		AssignmentSubmissionID: m.AssignmentSubmissionID,
		AssignmentID:           m.AssignmentSubmissionAssignmentID,
		StudentID:              m.AssignmentSubmissionStudentID,
		Attempt:                m.AssignmentSubmissionAttempt,
		FileURL:                m.AssignmentSubmissionFileURL,
		Comment:                m.AssignmentSubmissionComment,
		SubmittedAt:            m.AssignmentSubmissionSubmittedAt,
	}
}

func FromSubmissionModels(items []model.AssignmentSubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(items))
	for i := range items {
		out = append(out, FromSubmissionModel(&items[i]))
	}
	return out
}
