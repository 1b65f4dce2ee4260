package service

import (
	"testing"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/school/timetable/model"
)

func entry(day string, period, start, end int, subject string) model.TimetableEntryModel {
	return model.TimetableEntryModel{
		TimetableEntryID:           uuid.New(),
		TimetableEntryClassID:      uuid.New(),
		TimetableEntryDay:          day,
		TimetableEntryPeriod:       period,
		TimetableEntryStartMinutes: start,
		TimetableEntryEndMinutes:   end,
		TimetableEntrySubject:      subject,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		want                           bool
	}{
		{"identik", 600, 660, 600, 660, true},
		{"sebagian di tengah", 600, 660, 630, 690, true},
		{"b di dalam a", 600, 720, 630, 660, true},
		{"a di dalam b", 630, 660, 600, 720, true},
		{"sentuhan batas akhir-awal", 600, 660, 660, 720, false},
		{"sentuhan batas awal-akhir", 660, 720, 600, 660, false},
		{"terpisah jauh", 480, 540, 600, 660, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

func TestDayIndex(t *testing.T) {
	for i, d := range Days {
		got, ok := DayIndex(d)
		if !ok || got != i {
			t.Errorf("DayIndex(%q) = %d,%v, want %d,true", d, got, ok, i)
		}
	}
	if _, ok := DayIndex("Sunday"); ok {
		t.Error("DayIndex(Sunday) harus false")
	}
	if _, ok := DayIndex("monday"); ok {
		t.Error("DayIndex case-sensitive: monday harus false")
	}
}

func TestFindConflict(t *testing.T) {
	entries := []model.TimetableEntryModel{
		entry("Monday", 1, 600, 660, "Matematika"), // 10:00-11:00
		entry("Tuesday", 2, 600, 660, "Fisika"),
	}

	// 10:30-11:30 Senin: bentrok
	if c := FindConflict(entries, "Monday", 630, 690); c == nil {
		t.Fatal("harusnya konflik dengan Matematika")
	} else if c.TimetableEntrySubject != "Matematika" {
		t.Errorf("konflik salah entry: %s", c.TimetableEntrySubject)
	}

	// 11:00-12:00 Senin: batas bersentuhan, bukan konflik
	if c := FindConflict(entries, "Monday", 660, 720); c != nil {
		t.Errorf("sentuhan batas tidak boleh konflik, dapat %s", c.TimetableEntrySubject)
	}

	// jam sama tapi hari lain: bukan konflik
	if c := FindConflict(entries, "Wednesday", 600, 660); c != nil {
		t.Error("hari beda tidak boleh konflik")
	}
}

func TestSortEntries(t *testing.T) {
	entries := []model.TimetableEntryModel{
		entry("Saturday", 1, 420, 480, "d"),
		entry("Monday", 3, 540, 600, "b"),
		entry("Monday", 1, 420, 480, "a"),
		entry("Wednesday", 2, 480, 540, "c"),
	}
	SortEntries(entries)

	want := []string{"a", "b", "c", "d"}
	for i, w := range want {
		if entries[i].TimetableEntrySubject != w {
			t.Errorf("urutan[%d] = %s, want %s", i, entries[i].TimetableEntrySubject, w)
		}
	}
}

func TestBuildStudentGrid(t *testing.T) {
	entries := []model.TimetableEntryModel{
		// dua kelas, periode 1 dengan jam beda → label periode dari entry
		// pertama urutan kanonik (Senin sebelum Selasa)
		entry("Tuesday", 1, 480, 540, "Kimia"),  // 08:00-09:00
		entry("Monday", 1, 420, 480, "Biologi"), // 07:00-08:00
		entry("Monday", 3, 540, 600, "Sejarah"),
	}

	grid := BuildStudentGrid(entries)

	if len(grid.Grid) != len(Days) {
		t.Fatalf("grid punya %d hari, want %d", len(grid.Grid), len(Days))
	}
	for _, d := range Days {
		if len(grid.Grid[d]) != PeriodMax {
			t.Fatalf("hari %s punya %d periode, want %d", d, len(grid.Grid[d]), PeriodMax)
		}
	}

	if got := grid.Grid["Monday"][1].Subject; got != "Biologi" {
		t.Errorf("Senin periode 1 = %q, want Biologi", got)
	}
	if got := grid.Grid["Tuesday"][1].Subject; got != "Kimia" {
		t.Errorf("Selasa periode 1 = %q, want Kimia", got)
	}
	if got := grid.Grid["Friday"][5]; got != (GridCell{}) {
		t.Errorf("slot kosong harus cell kosong, dapat %+v", got)
	}

	// first wins setelah sort kanonik → label dari entry Senin
	if got := grid.PeriodTimes[1]; got != "07:00 AM - 08:00 AM" {
		t.Errorf("label periode 1 = %q, want 07:00 AM - 08:00 AM", got)
	}
	if got := grid.PeriodTimes[3]; got != "09:00 AM - 10:00 AM" {
		t.Errorf("label periode 3 = %q, want 09:00 AM - 10:00 AM", got)
	}
	if _, ok := grid.PeriodTimes[2]; ok {
		t.Error("periode tanpa entry tidak boleh punya label")
	}
}

func TestFormat12h(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{30, "12:30 AM"},
		{540, "09:00 AM"},
		{720, "12:00 PM"},
		{765, "12:45 PM"},
		{810, "01:30 PM"},
		{1439, "11:59 PM"},
	}
	for _, tt := range tests {
		if got := Format12h(tt.minutes); got != tt.want {
			t.Errorf("Format12h(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
