package repository

import (
	"clinica-ginecologica/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByPatient(db *gorm.DB, patientID int64, limit int) ([]entity.AuditLog, error)
}
