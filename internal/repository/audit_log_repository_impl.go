package repository

import (
	"clinica-ginecologica/internal/domain/entity"
	domainRepo "clinica-ginecologica/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

// FindByPatient returns the newest entries first. limit <= 0 means no limit.
func (r *auditLogRepository) FindByPatient(db *gorm.DB, patientID int64, limit int) ([]entity.AuditLog, error) {
	query := db.Where("patient_id = ?", patientID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logs []entity.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
