package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// App uji tanpa DB: semua case di bawah ditolak sebelum query jalan.
func newTestApp() *fiber.App {
	app := fiber.New()
	h := NewTimetableController(nil)
	app.Post("/timetable", h.AddEntry)
	app.Delete("/timetable/:id", h.DeleteEntry)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAddEntryErrorMapping(t *testing.T) {
	app := newTestApp()
	classID := uuid.New().String()

	tests := []struct {
		name string
		body string
		want int
	}{
		{
			"payload bukan JSON",
			"{bukan json",
			fiber.StatusBadRequest,
		},
		{
			"field wajib kosong",
			`{}`,
			fiber.StatusBadRequest,
		},
		{
			"jam tidak valid",
			`{"class_id":"` + classID + `","day":"Monday","start_time":"25:99","end_time":"11:00","period":1}`,
			fiber.StatusBadRequest,
		},
		{
			"hari di luar Senin-Sabtu",
			`{"class_id":"` + classID + `","day":"Sunday","start_time":"10:00","end_time":"11:00","period":1}`,
			fiber.StatusBadRequest,
		},
		{
			"end sebelum start",
			`{"class_id":"` + classID + `","day":"Monday","start_time":"11:00","end_time":"10:00","period":1}`,
			fiber.StatusBadRequest,
		},
		{
			"end sama dengan start",
			`{"class_id":"` + classID + `","day":"Monday","start_time":"10:00","end_time":"10:00","period":1}`,
			fiber.StatusBadRequest,
		},
		{
			"periode di atas maksimum",
			`{"class_id":"` + classID + `","day":"Monday","start_time":"10:00","end_time":"11:00","period":9}`,
			fiber.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := postJSON(t, app, "/timetable", tt.body); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDeleteEntryWithoutLogin(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("DELETE", "/timetable/"+uuid.New().String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
