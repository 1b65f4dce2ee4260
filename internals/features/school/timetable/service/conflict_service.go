package service

import (
	"errors"
	"fmt"
	"sort"

	model "kelasku_backend/internals/features/school/timetable/model"
)

/* =========================
   Hari & periode kanonik
========================= */

// Days: 6 hari sekolah, urutan kanonik (dipakai sorting & grid).
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

const (
	PeriodMin = 1
	PeriodMax = 8
)

// DayIndex mengembalikan posisi kanonik hari (0..5); ok=false kalau bukan hari sekolah.
func DayIndex(day string) (int, bool) {
	for i, d := range Days {
		if d == day {
			return i, true
		}
	}
	return 0, false
}

/* =========================
   Errors
========================= */

var (
	ErrClassNotFound = errors.New("kelas tidak ditemukan")
	ErrEntryNotFound = errors.New("entry timetable tidak ditemukan")
	ErrInvalidRange  = errors.New("rentang waktu tidak valid")
	ErrInvalidDay    = errors.New("hari tidak valid")
	ErrInvalidPeriod = errors.New("periode tidak valid")
)

// ScheduleConflictError membawa identitas entry yang bentrok supaya caller
// bisa menampilkan slot mana yang sudah terisi.
type ScheduleConflictError struct {
	Conflict model.TimetableEntryModel
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("slot bentrok dengan entry %s (%s %d)",
		e.Conflict.TimetableEntryID, e.Conflict.TimetableEntryDay, e.Conflict.TimetableEntryPeriod)
}

/* =========================
   Inti algoritma (pure)
========================= */

// Overlaps: tes interval half-open [aStart,aEnd) vs [bStart,bEnd).
// Sentuhan batas (aEnd == bStart) BUKAN overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// FindConflict mencari entry pertama pada `day` yang overlap dengan [start,end).
// entries boleh lintas kelas (sudah di-scope pemanggil ke kelas-kelas terdampak).
func FindConflict(entries []model.TimetableEntryModel, day string, start, end int) *model.TimetableEntryModel {
	for i := range entries {
		e := &entries[i]
		if e.TimetableEntryDay != day {
			continue
		}
		if Overlaps(e.TimetableEntryStartMinutes, e.TimetableEntryEndMinutes, start, end) {
			return e
		}
	}
	return nil
}

// SortEntries mengurutkan in-place berdasar (hari kanonik, periode) naik.
func SortEntries(entries []model.TimetableEntryModel) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, _ := DayIndex(entries[i].TimetableEntryDay)
		dj, _ := DayIndex(entries[j].TimetableEntryDay)
		if di != dj {
			return di < dj
		}
		return entries[i].TimetableEntryPeriod < entries[j].TimetableEntryPeriod
	})
}

/* =========================
   Grid siswa 6 hari × 8 periode
========================= */

type GridCell struct {
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
}

type StudentGrid struct {
	// day → period → cell (cell kosong = slot kosong)
	Grid map[string]map[int]GridCell `json:"grid"`
	// period → label jam tampilan; diambil dari entry PERTAMA per periode
	// setelah diurut kanonik, jadi deterministik. Label ini hint tampilan,
	// bukan jam otoritatif (tiap entry tetap punya jamnya sendiri).
	PeriodTimes map[int]string `json:"period_times"`
}

// BuildStudentGrid menyusun grid dari entries semua kelas yang diikuti siswa.
func BuildStudentGrid(entries []model.TimetableEntryModel) StudentGrid {
	grid := make(map[string]map[int]GridCell, len(Days))
	for _, d := range Days {
		grid[d] = make(map[int]GridCell, PeriodMax)
		for p := PeriodMin; p <= PeriodMax; p++ {
			grid[d][p] = GridCell{}
		}
	}

	SortEntries(entries)

	periodTimes := make(map[int]string)
	for i := range entries {
		e := &entries[i]
		if _, ok := DayIndex(e.TimetableEntryDay); !ok {
			continue
		}
		if e.TimetableEntryPeriod < PeriodMin || e.TimetableEntryPeriod > PeriodMax {
			continue
		}

		grid[e.TimetableEntryDay][e.TimetableEntryPeriod] = GridCell{
			Subject: e.TimetableEntrySubject,
			Teacher: e.TimetableEntryTeacherName,
		}

		// first wins
		if _, ok := periodTimes[e.TimetableEntryPeriod]; !ok {
			periodTimes[e.TimetableEntryPeriod] = fmt.Sprintf("%s - %s",
				Format12h(e.TimetableEntryStartMinutes),
				Format12h(e.TimetableEntryEndMinutes))
		}
	}

	return StudentGrid{Grid: grid, PeriodTimes: periodTimes}
}

/* =========================
   Format jam
========================= */

// Format12h: menit-sejak-tengah-malam → "09:00 AM".
func Format12h(minutes int) string {
	h := (minutes / 60) % 24
	m := minutes % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, suffix)
}
