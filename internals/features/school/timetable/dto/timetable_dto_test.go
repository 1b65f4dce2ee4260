package dto

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:30", 450, false},
		{"10:00", 600, false},
		{"23:59", 1439, false},
		{" 09:15 ", 555, false},
		{"24:00", 0, true},
		{"9:5", 0, true},
		{"10.00", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): harusnya error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{450, "07:30"},
		{600, "10:00"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddTimetableEntryRequestNormalize(t *testing.T) {
	empty := "   "
	subj := " Matematika "

	r := AddTimetableEntryRequest{
		Day:       "  monDAY ",
		StartTime: " 10:00 ",
		EndTime:   "11:00",
		Subject:   &subj,
	}
	r.Normalize()

	if r.Day != "Monday" {
		t.Errorf("Day = %q, want Monday", r.Day)
	}
	if r.StartTime != "10:00" {
		t.Errorf("StartTime = %q", r.StartTime)
	}
	if r.Subject == nil || *r.Subject != "Matematika" {
		t.Errorf("Subject = %v, want Matematika", r.Subject)
	}

	r2 := AddTimetableEntryRequest{Subject: &empty}
	r2.Normalize()
	if r2.Subject != nil {
		t.Error("Subject whitespace harus jadi nil")
	}
}
