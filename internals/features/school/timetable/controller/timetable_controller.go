package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/timetable/dto"
	"kelasku_backend/internals/features/school/timetable/service"
	helper "kelasku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type TimetableController struct {
	Service *service.TimetableService
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{Service: service.NewTimetableService(db)}
}

var validate = validator.New()

/* =========================== ADD =========================== */
// POST /api/t/timetable
func (ctrl *TimetableController) AddEntry(c *fiber.Ctx) error {
	var req dto.AddTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	start, err := dto.ParseClock(req.StartTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	end, err := dto.ParseClock(req.EndTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	entry, err := ctrl.Service.AddEntry(c.UserContext(), service.AddEntryInput{
		ClassID:         req.ClassID,
		Day:             req.Day,
		StartMinutes:    start,
		EndMinutes:      end,
		Period:          req.Period,
		TeacherName:     helper.GetUserNameFromToken(c),
		SubjectOverride: req.Subject,
	})
	if err != nil {
		var conflict *service.ScheduleConflictError
		switch {
		case errors.As(err, &conflict):
			return helper.JsonError(c, fiber.StatusConflict,
				"Slot waktu sudah terisi kelas lain: "+conflict.Conflict.TimetableEntrySubject+
					" ("+conflict.Conflict.TimetableEntryID.String()+")")
		case errors.Is(err, service.ErrClassNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		case errors.Is(err, service.ErrInvalidDay),
			errors.Is(err, service.ErrInvalidRange),
			errors.Is(err, service.ErrInvalidPeriod):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah timetable")
		}
	}

	return helper.JsonCreated(c, "Timetable berhasil ditambahkan", dto.FromEntryModel(entry))
}

/* =========================== DELETE =========================== */
// DELETE /api/t/timetable/:id
func (ctrl *TimetableController) DeleteEntry(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	entryID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Service.DeleteEntry(c.UserContext(), entryID, teacherID); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Entry timetable tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus entry")
	}

	return helper.JsonDeleted(c, "Entry berhasil dihapus", fiber.Map{"timetable_entry_id": entryID})
}

/* =========================== LIST =========================== */
// GET /api/t/timetable/:class_id
func (ctrl *TimetableController) ListForClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("class_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	entries, err := ctrl.Service.ListForClass(c.UserContext(), classID)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil timetable")
	}

	return helper.JsonOK(c, "ok", dto.FromEntryModels(entries))
}

/* =========================== GRID =========================== */
// GET /api/u/timetable/grid
func (ctrl *TimetableController) StudentGrid(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	grid, err := ctrl.Service.StudentGridFor(c.UserContext(), studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun grid")
	}

	return helper.JsonOK(c, "ok", grid)
}
