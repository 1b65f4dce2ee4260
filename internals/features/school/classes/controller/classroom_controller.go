package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/classes/dto"
	"kelasku_backend/internals/features/school/classes/model"
	helper "kelasku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClassroomController struct {
	DB *gorm.DB
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/t/classes
func (ctrl *ClassroomController) CreateClassroom(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tx := ctrl.DB.WithContext(c.Context()).Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback().Error
			panic(r)
		}
	}()

	// 🏷️ Kode kelas unik (retry terbatas; unique index tetap guard utama)
	code, err := helper.EnsureUniqueCode(
		helper.GenerateClassCode,
		func(code string) (bool, error) {
			return helper.CodeExistsIn(tx, "classrooms", "classroom_code", code)
		},
		helper.DefaultMaxCodeAttempts,
	)
	if err != nil {
		_ = tx.Rollback().Error
		if errors.Is(err, helper.ErrTokenGenerationExhausted) {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kode kelas unik, coba lagi")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	m := &model.ClassroomModel{
		ClassroomTeacherID: teacherID,
		ClassroomName:      req.ClassroomName,
		ClassroomSubject:   req.ClassroomSubject,
		ClassroomCode:      code,
	}

	if err := tx.Create(m).Error; err != nil {
		_ = tx.Rollback().Error
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "uq_classrooms_code") {
			return fiber.NewError(fiber.StatusConflict, "Kode kelas bentrok, silakan ulangi")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromClassroomModel(m))
}

/* ========================= LIST (TEACHER) ========================= */
// GET /api/t/classes
func (ctrl *ClassroomController) TeacherClassrooms(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var classes []model.ClassroomModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("classroom_teacher_id = ?", teacherID).
		Order("classroom_created_at DESC").
		Find(&classes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}

	items := make([]dto.TeacherClassroomItem, 0, len(classes))
	for i := range classes {
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&model.ClassMemberModel{}).
			Where("class_member_class_id = ?", classes[i].ClassroomID).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung siswa")
		}
		items = append(items, dto.TeacherClassroomItem{
			ClassroomResponse: dto.FromClassroomModel(&classes[i]),
			StudentCount:      count,
		})
	}

	return helper.JsonOK(c, "ok", items)
}

/* =========================== DELETE =========================== */
// DELETE /api/t/classes/:id
// Hard delete; cascade FK menghapus entries/sessions/attendances/assignments.
func (ctrl *ClassroomController) DeleteClassroom(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("classroom_id = ? AND classroom_teacher_id = ?", classID, teacherID).
		Delete(&model.ClassroomModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"classroom_id": classID})
}

/* ========================= JOIN (STUDENT) ========================= */
// POST /api/u/classes/join
func (ctrl *ClassroomController) JoinClassroom(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.JoinClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var classroom model.ClassroomModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("classroom_code = ?", req.ClassroomCode).
		First(&classroom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kode kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencari kelas")
	}

	// Idempoten: kalau sudah member, balikan sukses tanpa insert baru
	var existing model.ClassMemberModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("class_member_class_id = ? AND class_member_student_id = ?", classroom.ClassroomID, studentID).
		First(&existing).Error
	if err == nil {
		return helper.JsonOK(c, "Sudah bergabung di kelas ini", dto.JoinClassroomResponse{
			ClassroomID: classroom.ClassroomID,
			JoinedAt:    existing.ClassMemberJoinedAt,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek keanggotaan")
	}

	member := &model.ClassMemberModel{
		ClassMemberClassID:   classroom.ClassroomID,
		ClassMemberStudentID: studentID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(member).Error; err != nil {
		low := strings.ToLower(err.Error())
		// race join ganda: unique index menang, tetap balikan sukses idempoten
		if strings.Contains(low, "uq_class_members_class_student") {
			return helper.JsonOK(c, "Sudah bergabung di kelas ini", dto.JoinClassroomResponse{
				ClassroomID: classroom.ClassroomID,
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal bergabung ke kelas")
	}

	return helper.JsonCreated(c, "Berhasil bergabung ke kelas", dto.JoinClassroomResponse{
		ClassroomID: classroom.ClassroomID,
		JoinedAt:    member.ClassMemberJoinedAt,
	})
}

/* ========================= LIST (STUDENT) ========================= */
// GET /api/u/classes
func (ctrl *ClassroomController) StudentClassrooms(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var memberships []model.ClassMemberModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_member_student_id = ?", studentID).
		Order("class_member_joined_at ASC").
		Find(&memberships).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil keanggotaan")
	}

	items := make([]dto.StudentClassroomItem, 0, len(memberships))
	for i := range memberships {
		var classroom model.ClassroomModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("classroom_id = ?", memberships[i].ClassMemberClassID).
			First(&classroom).Error; err != nil {
			continue
		}

		var teacherName string
		ctrl.DB.WithContext(c.Context()).
			Table("users").
			Select("user_name").
			Where("user_id = ?", classroom.ClassroomTeacherID).
			Scan(&teacherName)

		items = append(items, dto.StudentClassroomItem{
			ClassroomResponse: dto.FromClassroomModel(&classroom),
			TeacherName:       teacherName,
			JoinedAt:          memberships[i].ClassMemberJoinedAt,
		})
	}

	return helper.JsonOK(c, "ok", items)
}
