package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/live_sessions/dto"
	"kelasku_backend/internals/features/school/live_sessions/service"
	helper "kelasku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type SessionController struct {
	Service *service.SessionService
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{Service: service.NewSessionService(db)}
}

func sessionLink(c *fiber.Ctx, token string) string {
	return c.Protocol() + "://" + c.Hostname() + "/api/u/sessions/" + token + "/join"
}

/* =========================== CREATE =========================== */
// POST /api/t/classes/:class_id/sessions
func (ctrl *SessionController) CreateSession(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(strings.TrimSpace(c.Params("class_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	session, err := ctrl.Service.CreateSession(c.UserContext(), classID, teacherID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		case errors.Is(err, helper.ErrTokenGenerationExhausted):
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token sesi unik, coba lagi")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memulai sesi")
		}
	}

	return helper.JsonCreated(c, "Sesi live berhasil dimulai",
		dto.FromLiveSessionModel(session, sessionLink(c, session.LiveSessionToken)))
}

/* ============================ JOIN ============================ */
// POST /api/u/sessions/:token/join
func (ctrl *SessionController) JoinSession(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	att, already, err := ctrl.Service.JoinSession(c.UserContext(), c.Params("token"), studentID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal bergabung ke sesi")
	}

	if already {
		return helper.JsonOK(c, "Sudah bergabung di sesi ini", dto.FromAttendanceModel(att))
	}
	return helper.JsonCreated(c, "Berhasil bergabung ke sesi", dto.FromAttendanceModel(att))
}

/* ============================ LEAVE ============================ */
// POST /api/u/sessions/:token/leave
func (ctrl *SessionController) LeaveSession(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	att, err := ctrl.Service.LeaveSession(c.UserContext(), c.Params("token"), studentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		case errors.Is(err, service.ErrAttendanceNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Kehadiran aktif tidak ditemukan")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal keluar dari sesi")
		}
	}

	return helper.JsonOK(c, "Berhasil keluar dari sesi", dto.FromAttendanceModel(att))
}

/* ============================= END ============================= */
// POST /api/t/sessions/:token/end
func (ctrl *SessionController) EndSession(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	session, alreadyEnded, openCount, err := ctrl.Service.EndSession(c.UserContext(), c.Params("token"), teacherID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		case errors.Is(err, service.ErrNotSessionOwner):
			return fiber.NewError(fiber.StatusForbidden, "Sesi ini bukan milik Anda")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengakhiri sesi")
		}
	}

	body := dto.EndSessionResponse{
		LiveSessionResponse: dto.FromLiveSessionModel(session, ""),
		OpenAttendanceCount: openCount,
	}
	if alreadyEnded {
		return helper.JsonOK(c, "Sesi sudah berakhir", body)
	}
	return helper.JsonOK(c, "Sesi berhasil diakhiri", body)
}
