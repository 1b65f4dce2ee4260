package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/assignments/dto"
	"kelasku_backend/internals/features/school/assignments/model"
	classModel "kelasku_backend/internals/features/school/classes/model"
	helper "kelasku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/t/assignments
func (ctrl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	dueAt, err := req.ParseDueAt()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format due_at harus RFC3339")
	}

	// Kelas harus milik guru ini
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&classModel.ClassroomModel{}).
		Where("classroom_id = ? AND classroom_teacher_id = ?", req.ClassID, teacherID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kelas")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	m := &model.AssignmentModel{
		AssignmentClassID:     req.ClassID,
		AssignmentTeacherID:   teacherID,
		AssignmentTitle:       req.Title,
		AssignmentDescription: req.Description,
		AssignmentAttachments: req.Attachments,
		AssignmentDueAt:       dueAt,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tugas")
	}

	return helper.JsonCreated(c, "Tugas berhasil dibuat", dto.FromAssignmentModel(m))
}

/* ========================= LIST (STUDENT) ========================= */
// GET /api/u/assignments
// Tugas dari semua kelas yang diikuti siswa, tenggat terdekat dulu.
func (ctrl *AssignmentController) ListForStudent(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	memberOf := ctrl.DB.WithContext(c.Context()).
		Model(&classModel.ClassMemberModel{}).
		Select("class_member_class_id").
		Where("class_member_student_id = ?", studentID)

	var assignments []model.AssignmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("assignment_class_id IN (?)", memberOf).
		Order("assignment_due_at DESC NULLS LAST").
		Order("assignment_created_at DESC").
		Find(&assignments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar tugas")
	}

	items := make([]dto.StudentAssignmentItem, 0, len(assignments))
	for i := range assignments {
		var className string
		ctrl.DB.WithContext(c.Context()).
			Table("classrooms").
			Select("classroom_name").
			Where("classroom_id = ?", assignments[i].AssignmentClassID).
			Scan(&className)

		items = append(items, dto.StudentAssignmentItem{
			AssignmentResponse: dto.FromAssignmentModel(&assignments[i]),
			ClassroomName:      className,
		})
	}

	return helper.JsonOK(c, "ok", items)
}

/* =========================== SUBMIT =========================== */
// POST /api/u/assignments/:id/submit
// Keep-all: setiap submit jadi attempt baru (max+1) dalam satu transaksi.
func (ctrl *AssignmentController) Submit(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	assignmentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var req dto.SubmitAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("assignment_id = ?", assignmentID).
		First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencari tugas")
	}

	// Harus member kelas tugas ini
	var memberCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&classModel.ClassMemberModel{}).
		Where("class_member_class_id = ? AND class_member_student_id = ?", assignment.AssignmentClassID, studentID).
		Count(&memberCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek keanggotaan")
	}
	if memberCount == 0 {
		return fiber.NewError(fiber.StatusForbidden, "Anda bukan anggota kelas tugas ini")
	}

	var submission *model.AssignmentSubmissionModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var maxAttempt int
		if err := tx.Model(&model.AssignmentSubmissionModel{}).
			Select("COALESCE(MAX(assignment_submission_attempt), 0)").
			Where("assignment_submission_assignment_id = ? AND assignment_submission_student_id = ?", assignmentID, studentID).
			Scan(&maxAttempt).Error; err != nil {
			return err
		}

		submission = &model.AssignmentSubmissionModel{
			AssignmentSubmissionAssignmentID: assignmentID,
			AssignmentSubmissionStudentID:    studentID,
			AssignmentSubmissionAttempt:      maxAttempt + 1,
			AssignmentSubmissionFileURL:      req.FileURL,
			AssignmentSubmissionComment:      req.Comment,
		}
		return tx.Create(submission).Error
	})
	if txErr != nil {
		// double-submit race: attempt bentrok di unique index, minta ulang saja
		if strings.Contains(strings.ToLower(txErr.Error()), "uq_assignment_submissions_attempt") {
			return fiber.NewError(fiber.StatusConflict, "Submit bentrok, silakan coba lagi")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengumpulkan tugas")
	}

	return helper.JsonCreated(c, "Tugas berhasil dikumpulkan", dto.FromSubmissionModel(submission))
}

/* ====================== SUBMISSIONS (TEACHER) ====================== */
// GET /api/t/assignments/:id/submissions
func (ctrl *AssignmentController) ListSubmissions(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	assignmentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("assignment_id = ? AND assignment_teacher_id = ?", assignmentID, teacherID).
		First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencari tugas")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.WithContext(c.Context()).
		Model(&model.AssignmentSubmissionModel{}).
		Where("assignment_submission_assignment_id = ?", assignmentID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung submission")
	}

	var submissions []model.AssignmentSubmissionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("assignment_submission_assignment_id = ?", assignmentID).
		Order("assignment_submission_student_id ASC").
		Order("assignment_submission_attempt ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&submissions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil submission")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromSubmissionModels(submissions), &pagination)
}
