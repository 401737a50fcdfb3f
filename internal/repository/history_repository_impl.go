package repository

import (
	"errors"
	"time"

	"clinica-ginecologica/internal/domain/entity"
	domainRepo "clinica-ginecologica/internal/domain/repository"

	"gorm.io/gorm"
)

type historyRepository struct{}

func NewHistoryRepository() domainRepo.HistoryRepository {
	return &historyRepository{}
}

func (r *historyRepository) FindByID(db *gorm.DB, id int64) (*entity.HistoryEntry, error) {
	var entry entity.HistoryEntry
	err := db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// FindByPatient returns newest first. limit <= 0 means no limit.
func (r *historyRepository) FindByPatient(db *gorm.DB, patientID int64, limit int) ([]entity.HistoryEntry, error) {
	query := db.Where("patient_id = ?", patientID).Order("consultation_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []entity.HistoryEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *historyRepository) FindByAppointmentID(db *gorm.DB, appointmentID int64) (*entity.HistoryEntry, error) {
	var entry entity.HistoryEntry
	err := db.Where("appointment_id = ?", appointmentID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *historyRepository) FindConsultationDates(db *gorm.DB, patientID int64) ([]time.Time, error) {
	var entries []entity.HistoryEntry
	err := db.Select("id", "consultation_date").
		Where("patient_id = ?", patientID).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(entries))
	for i, entry := range entries {
		dates[i] = entry.ConsultationDate
	}
	return dates, nil
}
