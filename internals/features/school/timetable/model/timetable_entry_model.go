package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================
   Model: timetable_entries
========================================= */

type TimetableEntryModel struct {
	// PK
	TimetableEntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timetable_entry_id" json:"timetable_entry_id"`

	TimetableEntryClassID uuid.UUID `gorm:"type:uuid;not null;index;column:timetable_entry_class_id" json:"timetable_entry_class_id"`

	// Monday..Saturday (urutan kanonik, bukan leksikal)
	TimetableEntryDay string `gorm:"type:varchar(10);not null;column:timetable_entry_day" json:"timetable_entry_day"`

	// Jam disimpan sebagai menit-sejak-tengah-malam; interval half-open [start, end)
	TimetableEntryStartMinutes int `gorm:"not null;column:timetable_entry_start_minutes" json:"timetable_entry_start_minutes"`
	TimetableEntryEndMinutes   int `gorm:"not null;column:timetable_entry_end_minutes" json:"timetable_entry_end_minutes"`

	TimetableEntryPeriod int `gorm:"not null;column:timetable_entry_period" json:"timetable_entry_period"`

	// SNAPSHOT saat entry dibuat; perubahan subject kelas TIDAK merambat ke sini
	TimetableEntrySubject     string `gorm:"type:varchar(200);not null;column:timetable_entry_subject" json:"timetable_entry_subject"`
	TimetableEntryTeacherName string `gorm:"type:varchar(120);not null;column:timetable_entry_teacher_name" json:"timetable_entry_teacher_name"`

	TimetableEntryCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:timetable_entry_created_at" json:"timetable_entry_created_at"`
}

func (TimetableEntryModel) TableName() string { return "timetable_entries" }
