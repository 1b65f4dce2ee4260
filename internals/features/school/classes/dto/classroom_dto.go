// file: internals/features/school/classes/dto/classroom_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/school/classes/model"
)

/* =========================================================
   REQUEST: CREATE CLASS (teacher)
========================================================= */

type CreateClassroomRequest struct {
	ClassroomName    string `json:"classroom_name"    form:"classroom_name"    validate:"required,min=1,max=200"`
	ClassroomSubject string `json:"classroom_subject" form:"classroom_subject" validate:"omitempty,max=200"`
}

func (r *CreateClassroomRequest) Normalize() {
	r.ClassroomName = strings.TrimSpace(r.ClassroomName)
	r.ClassroomSubject = strings.TrimSpace(r.ClassroomSubject)
}

/* =========================================================
   REQUEST: JOIN BY CODE (student)
========================================================= */

type JoinClassroomRequest struct {
	ClassroomCode string `json:"classroom_code" form:"classroom_code" validate:"required,len=6"`
}

func (r *JoinClassroomRequest) Normalize() {
	// kode kelas selalu huruf besar
	r.ClassroomCode = strings.ToUpper(strings.TrimSpace(r.ClassroomCode))
}

/* =========================================================
   RESPONSES
========================================================= */

type ClassroomResponse struct {
	ClassroomID        uuid.UUID `json:"classroom_id"`
	ClassroomName      string    `json:"classroom_name"`
	ClassroomSubject   string    `json:"classroom_subject"`
	ClassroomCode      string    `json:"classroom_code"`
	ClassroomCreatedAt time.Time `json:"classroom_created_at"`
}

func FromClassroomModel(m *model.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:        m.ClassroomID,
		ClassroomName:      m.ClassroomName,
		ClassroomSubject:   m.ClassroomSubject,
		ClassroomCode:      m.ClassroomCode,
		ClassroomCreatedAt: m.ClassroomCreatedAt,
	}
}

// TeacherClassroomItem: list kelas milik teacher + jumlah siswa.
type TeacherClassroomItem struct {
	ClassroomResponse
	StudentCount int64 `json:"student_count"`
}

// StudentClassroomItem: list kelas yang diikuti student + nama gurunya.
type StudentClassroomItem struct {
	ClassroomResponse
	TeacherName string    `json:"teacher_name"`
	JoinedAt    time.Time `json:"joined_at"`
}

type JoinClassroomResponse struct {
	ClassroomID uuid.UUID `json:"classroom_id"`
	JoinedAt    time.Time `json:"joined_at"`
}
