package dto

import (
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/school/live_sessions/model"
)

/* =========================================================
   RESPONSE DTO
========================================================= */

type LiveSessionResponse struct {
	LiveSessionID uuid.UUID              `json:"live_session_id"`
	ClassID       uuid.UUID              `json:"class_id"`
	Token         string                 `json:"token"`
	Link          string                 `json:"link,omitempty"`
	StartedAt     time.Time              `json:"started_at"`
	EndedAt       *time.Time             `json:"ended_at,omitempty"`
	DurationSec   *int                   `json:"duration_sec,omitempty"`
	ClassSnapshot map[string]interface{} `json:"class_snapshot,omitempty"`
}

func FromLiveSessionModel(m *model.LiveSessionModel, link string) LiveSessionResponse {
	return LiveSessionResponse{
		LiveSessionID: m.LiveSessionID,
		ClassID:       m.LiveSessionClassID,
		Token:         m.LiveSessionToken,
		Link:          link,
		StartedAt:     m.LiveSessionStartedAt,
		EndedAt:       m.LiveSessionEndedAt,
		DurationSec:   m.LiveSessionDurationSec,
		ClassSnapshot: m.LiveSessionClassSnapshot,
	}
}

type AttendanceResponse struct {
	SessionAttendanceID uuid.UUID  `json:"session_attendance_id"`
	SessionID           uuid.UUID  `json:"session_id"`
	JoinedAt            time.Time  `json:"joined_at"`
	LeftAt              *time.Time `json:"left_at,omitempty"`
	DurationSec         *int       `json:"duration_sec,omitempty"`
}

func FromAttendanceModel(m *model.SessionAttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		SessionAttendanceID: m.SessionAttendanceID,
		SessionID:           m.SessionAttendanceSessionID,
		JoinedAt:            m.SessionAttendanceJoinedAt,
		LeftAt:              m.SessionAttendanceLeftAt,
		DurationSec:         m.SessionAttendanceDurationSec,
	}
}

type EndSessionResponse struct {
	LiveSessionResponse
	OpenAttendanceCount int64 `json:"open_attendance_count"`
}
