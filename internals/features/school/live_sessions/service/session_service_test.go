package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/school/live_sessions/model"
)

func TestComputeDurationSec(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"satu jam", base, base.Add(time.Hour), 3600},
		{"nol", base, base, 0},
		{"sub-detik dibulatkan ke bawah", base, base.Add(900 * time.Millisecond), 0},
		{"90 detik", base, base.Add(90 * time.Second), 90},
		{"clock mundur di-clamp nol", base, base.Add(-5 * time.Minute), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeDurationSec(tt.from, tt.to); got != tt.want {
				t.Errorf("ComputeDurationSec = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestApplyEndIdempotent(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	session := &model.LiveSessionModel{
		LiveSessionID:        uuid.New(),
		LiveSessionStartedAt: start,
	}

	firstEnd := start.Add(10 * time.Minute)
	if !applyEnd(session, firstEnd) {
		t.Fatal("end pertama harus mengubah state")
	}
	if session.LiveSessionDurationSec == nil || *session.LiveSessionDurationSec != 600 {
		t.Fatalf("duration = %v, want 600", session.LiveSessionDurationSec)
	}

	// end kedua jauh setelahnya: no-op, duration TIDAK dihitung ulang
	if applyEnd(session, start.Add(2*time.Hour)) {
		t.Fatal("end kedua harus no-op")
	}
	if *session.LiveSessionDurationSec != 600 {
		t.Errorf("duration berubah jadi %d setelah end kedua", *session.LiveSessionDurationSec)
	}
	if !session.LiveSessionEndedAt.Equal(firstEnd) {
		t.Errorf("ended_at berubah jadi %v", session.LiveSessionEndedAt)
	}
}

func TestApplyLeaveIdempotent(t *testing.T) {
	joined := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	att := &model.SessionAttendanceModel{
		SessionAttendanceID:       uuid.New(),
		SessionAttendanceJoinedAt: joined,
	}

	firstLeave := joined.Add(90 * time.Second)
	if !applyLeave(att, firstLeave) {
		t.Fatal("leave pertama harus menutup record")
	}
	if att.SessionAttendanceDurationSec == nil || *att.SessionAttendanceDurationSec != 90 {
		t.Fatalf("duration = %v, want 90", att.SessionAttendanceDurationSec)
	}

	if applyLeave(att, joined.Add(time.Hour)) {
		t.Fatal("leave kedua harus no-op")
	}
	if *att.SessionAttendanceDurationSec != 90 {
		t.Errorf("duration berubah jadi %d setelah leave kedua", *att.SessionAttendanceDurationSec)
	}
}

func TestAttendanceForJoin(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	studentID := uuid.New()
	session := &model.LiveSessionModel{
		LiveSessionID:        uuid.New(),
		LiveSessionStartedAt: now.Add(-time.Hour),
	}

	t.Run("record OPEN dipakai ulang", func(t *testing.T) {
		open := &model.SessionAttendanceModel{
			SessionAttendanceID:        uuid.New(),
			SessionAttendanceSessionID: session.LiveSessionID,
			SessionAttendanceStudentID: studentID,
			SessionAttendanceJoinedAt:  now.Add(-10 * time.Minute),
		}
		att, reused := attendanceForJoin(session, open, studentID, now)
		if !reused {
			t.Fatal("join kedua harus pakai record yang ada")
		}
		if att != open {
			t.Error("join kedua tidak boleh membuat record baru")
		}
	})

	t.Run("tanpa record OPEN dibuat baru", func(t *testing.T) {
		att, reused := attendanceForJoin(session, nil, studentID, now)
		if reused {
			t.Fatal("tidak ada record OPEN, harus buat baru")
		}
		if att.SessionAttendanceSessionID != session.LiveSessionID ||
			att.SessionAttendanceStudentID != studentID ||
			!att.SessionAttendanceJoinedAt.Equal(now) {
			t.Errorf("record baru salah isi: %+v", att)
		}
	})

	t.Run("sesi ENDED tetap bisa di-join", func(t *testing.T) {
		endedAt := now.Add(-time.Minute)
		ended := &model.LiveSessionModel{
			LiveSessionID:        uuid.New(),
			LiveSessionStartedAt: now.Add(-time.Hour),
			LiveSessionEndedAt:   &endedAt,
		}
		att, reused := attendanceForJoin(ended, nil, studentID, now)
		if reused || att == nil {
			t.Fatal("join di sesi ENDED harus tetap membuat record")
		}
		if att.SessionAttendanceSessionID != ended.LiveSessionID {
			t.Errorf("record menunjuk sesi %v", att.SessionAttendanceSessionID)
		}
	})
}
