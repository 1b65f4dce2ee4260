// file: internals/features/school/timetable/dto/timetable_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/school/timetable/model"
)

/* =========================================================
   Jam "HH:MM" ↔ menit-sejak-tengah-malam
========================================================= */

// ParseClock menerima "HH:MM" 24 jam, balikan menit sejak tengah malam.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("format jam harus HH:MM: %w", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock: kebalikan ParseClock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", (minutes/60)%24, minutes%60)
}

/* =========================================================
   REQUEST: ADD ENTRY (teacher)
========================================================= */

type AddTimetableEntryRequest struct {
	ClassID   uuid.UUID `json:"class_id"   form:"class_id"   validate:"required"`
	Day       string    `json:"day"        form:"day"        validate:"required"`
	StartTime string    `json:"start_time" form:"start_time" validate:"required"`
	EndTime   string    `json:"end_time"   form:"end_time"   validate:"required"`
	Period    int       `json:"period"     form:"period"     validate:"required,min=1"`
	Subject   *string   `json:"subject,omitempty" form:"subject"`
}

func (r *AddTimetableEntryRequest) Normalize() {
	// "monday" / "MONDAY" → "Monday"
	d := strings.ToLower(strings.TrimSpace(r.Day))
	if d != "" {
		r.Day = strings.ToUpper(d[:1]) + d[1:]
	}
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
	if r.Subject != nil {
		s := strings.TrimSpace(*r.Subject)
		if s == "" {
			r.Subject = nil
		} else {
			r.Subject = &s
		}
	}
}

/* =========================================================
   RESPONSES
========================================================= */

type TimetableEntryResponse struct {
	TimetableEntryID uuid.UUID `json:"timetable_entry_id"`
	ClassID          uuid.UUID `json:"class_id"`
	Day              string    `json:"day"`
	Period           int       `json:"period"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	Subject          string    `json:"subject"`
	TeacherName      string    `json:"teacher_name"`
}

func FromEntryModel(m *model.TimetableEntryModel) TimetableEntryResponse {
	return TimetableEntryResponse{
		TimetableEntryID: m.TimetableEntryID,
		ClassID:          m.TimetableEntryClassID,
		Day:              m.TimetableEntryDay,
		Period:           m.TimetableEntryPeriod,
		StartTime:        FormatClock(m.TimetableEntryStartMinutes),
		EndTime:          FormatClock(m.TimetableEntryEndMinutes),
		Subject:          m.TimetableEntrySubject,
		TeacherName:      m.TimetableEntryTeacherName,
	}
}

func FromEntryModels(ms []model.TimetableEntryModel) []TimetableEntryResponse {
	out := make([]TimetableEntryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromEntryModel(&ms[i]))
	}
	return out
}
