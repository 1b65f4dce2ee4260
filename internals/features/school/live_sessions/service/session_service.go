package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	classModel "kelasku_backend/internals/features/school/classes/model"
	"kelasku_backend/internals/features/school/live_sessions/model"
	helper "kelasku_backend/internals/helpers"
)

var (
	ErrClassNotFound      = errors.New("kelas tidak ditemukan")
	ErrSessionNotFound    = errors.New("sesi tidak ditemukan")
	ErrAttendanceNotFound = errors.New("kehadiran aktif tidak ditemukan")
	ErrNotSessionOwner    = errors.New("bukan pemilik sesi")
)

// ComputeDurationSec: durasi detik dari from..to, clamp minimal 0.
// Clock skew / koreksi NTP bisa bikin to < from.
func ComputeDurationSec(from, to time.Time) int {
	d := int(to.Sub(from) / time.Second)
	if d < 0 {
		return 0
	}
	return d
}

// applyEnd menutup sesi sekali saja. Sesi yang sudah ENDED adalah no-op:
// ended_at dan duration tersimpan TIDAK dihitung ulang.
func applyEnd(s *model.LiveSessionModel, now time.Time) bool {
	if s.IsEnded() {
		return false
	}
	d := ComputeDurationSec(s.LiveSessionStartedAt, now)
	s.LiveSessionEndedAt = &now
	s.LiveSessionDurationSec = &d
	return true
}

// applyLeave menutup record attendance sekali saja; record yang sudah
// tertutup tidak diubah.
func applyLeave(a *model.SessionAttendanceModel, now time.Time) bool {
	if !a.IsOpen() {
		return false
	}
	d := ComputeDurationSec(a.SessionAttendanceJoinedAt, now)
	a.SessionAttendanceLeftAt = &now
	a.SessionAttendanceDurationSec = &d
	return true
}

// attendanceForJoin menentukan hasil join: record OPEN yang ada dipakai
// ulang (idempoten, tetap satu record), selain itu dibuat record baru.
// Status sesi tidak membatasi join; attendance berjalan independen dari
// lifecycle sesi.
func attendanceForJoin(session *model.LiveSessionModel, open *model.SessionAttendanceModel, studentID uuid.UUID, now time.Time) (att *model.SessionAttendanceModel, reused bool) {
	if open != nil {
		return open, true
	}
	return &model.SessionAttendanceModel{
		SessionAttendanceSessionID: session.LiveSessionID,
		SessionAttendanceStudentID: studentID,
		SessionAttendanceJoinedAt:  now,
	}, false
}

type SessionService struct {
	DB *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

/* =========================== CREATE =========================== */

// CreateSession memulai live session untuk kelas milik teacherID.
// Token unik di-generate dengan retry terbatas; nama & mapel kelas
// di-snapshot ke JSONB supaya riwayat sesi tahan rename kelas.
func (s *SessionService) CreateSession(ctx context.Context, classID, teacherID uuid.UUID) (*model.LiveSessionModel, error) {
	var classroom classModel.ClassroomModel
	if err := s.DB.WithContext(ctx).
		Where("classroom_id = ? AND classroom_teacher_id = ?", classID, teacherID).
		First(&classroom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	session := &model.LiveSessionModel{
		LiveSessionClassID:   classroom.ClassroomID,
		LiveSessionTeacherID: teacherID,
		LiveSessionStartedAt: time.Now(),
		LiveSessionClassSnapshot: datatypes.JSONMap{
			"classroom_name":    classroom.ClassroomName,
			"classroom_subject": classroom.ClassroomSubject,
		},
	}

	// Insert langsung; unique index di live_session_token jadi cek tabrakan.
	// Bentrok = regenerate token dan coba lagi sampai budget habis.
	err := helper.RetryOnCollision(
		func() (string, error) { return helper.GenerateSessionToken(configs.SessionTokenLength) },
		func(token string) error {
			session.LiveSessionToken = token
			return s.DB.WithContext(ctx).Create(session).Error
		},
		func(err error) bool {
			return strings.Contains(strings.ToLower(err.Error()), "uq_live_sessions_token")
		},
		helper.DefaultMaxCodeAttempts,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

/* ============================ JOIN ============================ */

// JoinSession mencatat siswa masuk ke sesi. Idempoten: kalau masih punya
// record OPEN (left_at NULL), record itu yang dibalikin tanpa insert baru.
// Sesi ENDED tetap menerima join; attendance independen dari lifecycle sesi.
func (s *SessionService) JoinSession(ctx context.Context, token string, studentID uuid.UUID) (*model.SessionAttendanceModel, bool, error) {
	session, err := s.findByToken(ctx, token)
	if err != nil {
		return nil, false, err
	}

	var open model.SessionAttendanceModel
	err = s.DB.WithContext(ctx).
		Where("session_attendance_session_id = ? AND session_attendance_student_id = ? AND session_attendance_left_at IS NULL",
			session.LiveSessionID, studentID).
		First(&open).Error
	if err == nil {
		att, reused := attendanceForJoin(session, &open, studentID, time.Now())
		return att, reused, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	att, _ := attendanceForJoin(session, nil, studentID, time.Now())
	if err := s.DB.WithContext(ctx).Create(att).Error; err != nil {
		// double-tap join: partial unique index menang, ambil record yang sudah ada
		if strings.Contains(strings.ToLower(err.Error()), "uq_session_attendances_open") {
			if err2 := s.DB.WithContext(ctx).
				Where("session_attendance_session_id = ? AND session_attendance_student_id = ? AND session_attendance_left_at IS NULL",
					session.LiveSessionID, studentID).
				First(&open).Error; err2 == nil {
				return &open, true, nil
			}
		}
		return nil, false, err
	}
	return att, false, nil
}

/* ============================ LEAVE ============================ */

// LeaveSession menutup record OPEN milik siswa. Tidak ada record OPEN =
// ErrAttendanceNotFound (404), termasuk kalau siswa leave dua kali.
func (s *SessionService) LeaveSession(ctx context.Context, token string, studentID uuid.UUID) (*model.SessionAttendanceModel, error) {
	session, err := s.findByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	var att model.SessionAttendanceModel
	if err := s.DB.WithContext(ctx).
		Where("session_attendance_session_id = ? AND session_attendance_student_id = ? AND session_attendance_left_at IS NULL",
			session.LiveSessionID, studentID).
		First(&att).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}

	applyLeave(&att, time.Now())

	res := s.DB.WithContext(ctx).
		Model(&model.SessionAttendanceModel{}).
		Where("session_attendance_id = ? AND session_attendance_left_at IS NULL", att.SessionAttendanceID).
		Updates(map[string]interface{}{
			"session_attendance_left_at":      att.SessionAttendanceLeftAt,
			"session_attendance_duration_sec": att.SessionAttendanceDurationSec,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// race leave ganda: record keburu ditutup request lain
		return nil, ErrAttendanceNotFound
	}

	return &att, nil
}

/* ============================= END ============================= */

// EndSession menutup sesi (terminal). Idempoten: end kedua balikin state
// tersimpan tanpa hitung ulang durasi. Attendance yang masih OPEN sengaja
// dibiarkan; jumlahnya dilaporkan lewat openCount.
func (s *SessionService) EndSession(ctx context.Context, token string, teacherID uuid.UUID) (session *model.LiveSessionModel, alreadyEnded bool, openCount int64, err error) {
	session, err = s.findByToken(ctx, token)
	if err != nil {
		return nil, false, 0, err
	}
	if session.LiveSessionTeacherID != teacherID {
		return nil, false, 0, ErrNotSessionOwner
	}

	if !applyEnd(session, time.Now()) {
		openCount, err = s.countOpen(ctx, session.LiveSessionID)
		return session, true, openCount, err
	}

	res := s.DB.WithContext(ctx).
		Model(&model.LiveSessionModel{}).
		Where("live_session_id = ? AND live_session_ended_at IS NULL", session.LiveSessionID).
		Updates(map[string]interface{}{
			"live_session_ended_at":     session.LiveSessionEndedAt,
			"live_session_duration_sec": session.LiveSessionDurationSec,
		})
	if res.Error != nil {
		return nil, false, 0, res.Error
	}
	if res.RowsAffected == 0 {
		// race end ganda: request lain menang, ambil state final
		if err := s.DB.WithContext(ctx).
			Where("live_session_id = ?", session.LiveSessionID).
			First(session).Error; err != nil {
			return nil, false, 0, err
		}
		openCount, err = s.countOpen(ctx, session.LiveSessionID)
		return session, true, openCount, err
	}

	openCount, err = s.countOpen(ctx, session.LiveSessionID)
	return session, false, openCount, err
}

/* =========================== HELPERS =========================== */

func (s *SessionService) findByToken(ctx context.Context, token string) (*model.LiveSessionModel, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	var session model.LiveSessionModel
	if err := s.DB.WithContext(ctx).
		Where("live_session_token = ?", token).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) countOpen(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&model.SessionAttendanceModel{}).
		Where("session_attendance_session_id = ? AND session_attendance_left_at IS NULL", sessionID).
		Count(&n).Error
	return n, err
}
