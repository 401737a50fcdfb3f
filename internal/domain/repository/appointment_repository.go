package repository

import (
	"time"

	"clinica-ginecologica/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindByPatient(db *gorm.DB, patientID int64, filter entity.AppointmentFilter, now time.Time) ([]entity.Appointment, error)
	FindUpcomingHolding(db *gorm.DB, patientID int64, now time.Time, limit int) ([]entity.Appointment, error)
	FindHoldingByDoctorBetween(db *gorm.DB, doctorID int64, from, to time.Time) ([]entity.Appointment, error)
	ExistsHoldingAt(db *gorm.DB, doctorID int64, at time.Time) (bool, error)
	TransitionStatus(db *gorm.DB, id int64, from []entity.AppointmentStatus, to entity.AppointmentStatus) (int64, error)
	CountByPatient(db *gorm.DB, patientID int64) (int64, error)
	CountByStatus(db *gorm.DB, patientID int64) ([]entity.StatusCount, error)
	CountByConsultationType(db *gorm.DB, patientID int64) ([]entity.ConsultationTypeCount, error)
}
