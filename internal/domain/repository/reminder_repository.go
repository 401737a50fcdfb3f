package repository

import (
	"time"

	"clinica-ginecologica/internal/domain/entity"

	"gorm.io/gorm"
)

type ReminderRepository interface {
	Create(db *gorm.DB, reminder *entity.Reminder) error
	FindByID(db *gorm.DB, id int64) (*entity.Reminder, error)
	FindByPatient(db *gorm.DB, patientID int64) ([]entity.Reminder, error)
	FindUpcomingActive(db *gorm.DB, patientID int64, now time.Time, limit int) ([]entity.Reminder, error)
	UpdateStatus(db *gorm.DB, id int64, status entity.ReminderStatus) error
}
