package repository

import (
	"errors"
	"time"

	"clinica-ginecologica/internal/domain/entity"
	domainRepo "clinica-ginecologica/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindByPatient lists a patient's appointments: upcoming ascending, past and all descending.
func (r *appointmentRepository) FindByPatient(db *gorm.DB, patientID int64, filter entity.AppointmentFilter, now time.Time) ([]entity.Appointment, error) {
	query := db.Where("patient_id = ?", patientID)

	switch filter {
	case entity.AppointmentFilterUpcoming:
		query = query.Where("scheduled_at >= ?", now.UTC()).Order("scheduled_at ASC")
	case entity.AppointmentFilterPast:
		query = query.Where("scheduled_at < ?", now.UTC()).Order("scheduled_at DESC")
	default:
		query = query.Order("scheduled_at DESC")
	}

	var appointments []entity.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingHolding(db *gorm.DB, patientID int64, now time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_id = ? AND scheduled_at >= ? AND status IN ?", patientID, now.UTC(), entity.HoldingStatuses).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindHoldingByDoctorBetween returns the doctor's pending/confirmed appointments in [from, to).
func (r *appointmentRepository) FindHoldingByDoctorBetween(db *gorm.DB, doctorID int64, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND scheduled_at >= ? AND scheduled_at < ? AND status IN ?",
		doctorID, from.UTC(), to.UTC(), entity.HoldingStatuses).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ExistsHoldingAt(db *gorm.DB, doctorID int64, at time.Time) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND scheduled_at = ? AND status IN ?", doctorID, at.UTC(), entity.HoldingStatuses).
		Count(&count).Error
	return count > 0, err
}

// TransitionStatus moves an appointment to `to` ONLY if its current status is one of `from`.
// Returns affected rows: 1 = success, 0 = status changed underneath (prevents double-cancel race).
func (r *appointmentRepository) TransitionStatus(db *gorm.DB, id int64, from []entity.AppointmentStatus, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByPatient(db *gorm.DB, patientID int64) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("patient_id = ?", patientID).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByStatus(db *gorm.DB, patientID int64) ([]entity.StatusCount, error) {
	var rows []entity.StatusCount
	err := db.Model(&entity.Appointment{}).
		Select("status, COUNT(*) AS total").
		Where("patient_id = ?", patientID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) CountByConsultationType(db *gorm.DB, patientID int64) ([]entity.ConsultationTypeCount, error) {
	var rows []entity.ConsultationTypeCount
	err := db.Model(&entity.Appointment{}).
		Select("consultation_type, COUNT(*) AS total").
		Where("patient_id = ?", patientID).
		Group("consultation_type").
		Order("consultation_type ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
