package repository

import (
	"errors"
	"time"

	"clinica-ginecologica/internal/domain/entity"
	domainRepo "clinica-ginecologica/internal/domain/repository"

	"gorm.io/gorm"
)

type reminderRepository struct{}

func NewReminderRepository() domainRepo.ReminderRepository {
	return &reminderRepository{}
}

func (r *reminderRepository) Create(db *gorm.DB, reminder *entity.Reminder) error {
	return db.Create(reminder).Error
}

func (r *reminderRepository) FindByID(db *gorm.DB, id int64) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := db.Where("id = ?", id).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) FindByPatient(db *gorm.DB, patientID int64) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := db.Where("patient_id = ?", patientID).Order("remind_at DESC").Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) FindUpcomingActive(db *gorm.DB, patientID int64, now time.Time, limit int) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := db.Where("patient_id = ? AND status = ? AND remind_at >= ?", patientID, entity.ReminderStatusActive, now.UTC()).
		Order("remind_at ASC").
		Limit(limit).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) UpdateStatus(db *gorm.DB, id int64, status entity.ReminderStatus) error {
	return db.Model(&entity.Reminder{}).Where("id = ?", id).Update("status", status).Error
}
