package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================
   Model: live_sessions
========================================= */

// Lifecycle: ACTIVE (ended_at NULL) → ENDED (terminal).
// Duration dihitung SEKALI saat end; setelah itu immutable.
type LiveSessionModel struct {
	// PK
	LiveSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:live_session_id" json:"live_session_id"`

	LiveSessionClassID   uuid.UUID `gorm:"type:uuid;not null;index;column:live_session_class_id" json:"live_session_class_id"`
	LiveSessionTeacherID uuid.UUID `gorm:"type:uuid;not null;column:live_session_teacher_id" json:"live_session_teacher_id"`

	// Token share link; unik global
	LiveSessionToken string `gorm:"type:varchar(9);not null;uniqueIndex:uq_live_sessions_token;column:live_session_token" json:"live_session_token"`

	LiveSessionStartedAt   time.Time  `gorm:"type:timestamptz;not null;default:now();column:live_session_started_at" json:"live_session_started_at"`
	LiveSessionEndedAt     *time.Time `gorm:"type:timestamptz;column:live_session_ended_at" json:"live_session_ended_at,omitempty"`
	LiveSessionDurationSec *int       `gorm:"column:live_session_duration_sec" json:"live_session_duration_sec,omitempty"`

	/* ==========================
	   SNAPSHOT kelas (JSONB)
	========================== */
	LiveSessionClassSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:live_session_class_snapshot" json:"live_session_class_snapshot,omitempty"`

	LiveSessionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:live_session_created_at" json:"live_session_created_at"`
}

func (LiveSessionModel) TableName() string { return "live_sessions" }

func (m *LiveSessionModel) IsEnded() bool { return m.LiveSessionEndedAt != nil }
