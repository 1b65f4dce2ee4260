package service

import (
	"bytes"
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "kelasku_backend/internals/features/school/classes/model"
	model "kelasku_backend/internals/features/school/timetable/model"
)

/* ================= Service & Constructor ================= */

type TimetableService struct {
	DB *gorm.DB
}

func NewTimetableService(db *gorm.DB) *TimetableService {
	return &TimetableService{DB: db}
}

type AddEntryInput struct {
	ClassID      uuid.UUID
	Day          string
	StartMinutes int
	EndMinutes   int
	Period       int

	// snapshot: nama guru pembuat entry; subject default dari kelas
	TeacherName     string
	SubjectOverride *string
}

// affectedClassIDs: kelas target + kelas lain yang berbagi siswa, dedup,
// urut byte uuid naik. Semua pemanggil meng-lock dengan urutan yang sama.
func affectedClassIDs(target uuid.UUID, others []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{target: {}}
	out := []uuid.UUID{target}
	for _, id := range others {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}

/* =========================== ADD =========================== */

// AddEntry memvalidasi lalu menyisipkan entry timetable dengan cek konflik
// lintas kelas yang berbagi minimal satu siswa (satu hop).
//
// Seluruh scan + insert berjalan dalam SATU transaksi dengan FOR UPDATE di
// baris classroom terdampak (diurut by id, hindari deadlock), menutup race
// check-then-act dua insert paralel yang sama-sama lolos cek.
func (s *TimetableService) AddEntry(ctx context.Context, in AddEntryInput) (*model.TimetableEntryModel, error) {
	if _, ok := DayIndex(in.Day); !ok {
		return nil, ErrInvalidDay
	}
	if in.StartMinutes < 0 || in.EndMinutes <= in.StartMinutes {
		return nil, ErrInvalidRange
	}
	if in.Period < PeriodMin || in.Period > PeriodMax {
		return nil, ErrInvalidPeriod
	}

	var created *model.TimetableEntryModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// kelas target: baca TANPA lock dulu (sumber snapshot subject);
		// semua lock diambil dalam satu pass terurut di bawah
		var classroom classModel.ClassroomModel
		if err := tx.
			Where("classroom_id = ?", in.ClassID).
			First(&classroom).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return err
		}

		// siswa kelas ini
		var studentIDs []uuid.UUID
		if err := tx.Model(&classModel.ClassMemberModel{}).
			Where("class_member_class_id = ?", in.ClassID).
			Pluck("class_member_student_id", &studentIDs).Error; err != nil {
			return err
		}

		// semua kelas yang diikuti siswa-siswa itu (satu hop)
		var otherClassIDs []uuid.UUID
		if len(studentIDs) > 0 {
			if err := tx.Model(&classModel.ClassMemberModel{}).
				Distinct("class_member_class_id").
				Where("class_member_student_id IN ?", studentIDs).
				Pluck("class_member_class_id", &otherClassIDs).Error; err != nil {
				return err
			}
		}
		affected := affectedClassIDs(in.ClassID, otherClassIDs)

		// 🔒 serialisasi per affected-class-set: lock baris classroom SATU
		// per SATU urut id, urutan akuisisi identik antar request (bebas
		// deadlock). ORDER BY + FOR UPDATE satu query tidak menjamin urutan
		// lock mengikuti urutan sort.
		for _, id := range affected {
			var locked classModel.ClassroomModel
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("classroom_id = ?", id).
				First(&locked).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					if id == in.ClassID {
						return ErrClassNotFound
					}
					// kelas lain keburu dihapus; entry-nya ikut cascade
					continue
				}
				return err
			}
		}

		// scan konflik half-open: existing.start < new.end AND existing.end > new.start
		var conflict model.TimetableEntryModel
		err := tx.Where("timetable_entry_class_id IN ?", affected).
			Where("timetable_entry_day = ?", in.Day).
			Where("timetable_entry_start_minutes < ? AND timetable_entry_end_minutes > ?",
				in.EndMinutes, in.StartMinutes).
			First(&conflict).Error
		if err == nil {
			return &ScheduleConflictError{Conflict: conflict}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		subject := classroom.ClassroomSubject
		if in.SubjectOverride != nil && *in.SubjectOverride != "" {
			subject = *in.SubjectOverride
		}

		m := &model.TimetableEntryModel{
			TimetableEntryClassID:      in.ClassID,
			TimetableEntryDay:          in.Day,
			TimetableEntryStartMinutes: in.StartMinutes,
			TimetableEntryEndMinutes:   in.EndMinutes,
			TimetableEntryPeriod:       in.Period,
			TimetableEntrySubject:      subject,
			TimetableEntryTeacherName:  in.TeacherName,
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

/* =========================== DELETE =========================== */

// DeleteEntry menghapus satu entry; hanya teacher pemilik kelasnya.
func (s *TimetableService) DeleteEntry(ctx context.Context, entryID, teacherID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry model.TimetableEntryModel
		if err := tx.Where("timetable_entry_id = ?", entryID).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEntryNotFound
			}
			return err
		}

		var classroom classModel.ClassroomModel
		if err := tx.Where("classroom_id = ? AND classroom_teacher_id = ?",
			entry.TimetableEntryClassID, teacherID).
			First(&classroom).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEntryNotFound
			}
			return err
		}

		return tx.Delete(&entry).Error
	})
}

/* =========================== LIST =========================== */

// ListForClass: semua entry satu kelas, urut (hari kanonik, periode).
func (s *TimetableService) ListForClass(ctx context.Context, classID uuid.UUID) ([]model.TimetableEntryModel, error) {
	var count int64
	if err := s.DB.WithContext(ctx).
		Model(&classModel.ClassroomModel{}).
		Where("classroom_id = ?", classID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrClassNotFound
	}

	var entries []model.TimetableEntryModel
	if err := s.DB.WithContext(ctx).
		Where("timetable_entry_class_id = ?", classID).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	SortEntries(entries)
	return entries, nil
}

/* =========================== GRID =========================== */

// StudentGridFor: grid 6×8 dari semua kelas yang diikuti siswa.
func (s *TimetableService) StudentGridFor(ctx context.Context, studentID uuid.UUID) (StudentGrid, error) {
	var classIDs []uuid.UUID
	if err := s.DB.WithContext(ctx).
		Model(&classModel.ClassMemberModel{}).
		Where("class_member_student_id = ?", studentID).
		Pluck("class_member_class_id", &classIDs).Error; err != nil {
		return StudentGrid{}, err
	}

	var entries []model.TimetableEntryModel
	if len(classIDs) > 0 {
		if err := s.DB.WithContext(ctx).
			Where("timetable_entry_class_id IN ?", classIDs).
			Find(&entries).Error; err != nil {
			return StudentGrid{}, err
		}
	}

	return BuildStudentGrid(entries), nil
}
