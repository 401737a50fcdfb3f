package repository

import (
	"time"

	"clinica-ginecologica/internal/domain/entity"

	"gorm.io/gorm"
)

type HistoryRepository interface {
	FindByID(db *gorm.DB, id int64) (*entity.HistoryEntry, error)
	FindByPatient(db *gorm.DB, patientID int64, limit int) ([]entity.HistoryEntry, error)
	FindByAppointmentID(db *gorm.DB, appointmentID int64) (*entity.HistoryEntry, error)
	FindConsultationDates(db *gorm.DB, patientID int64) ([]time.Time, error)
}
