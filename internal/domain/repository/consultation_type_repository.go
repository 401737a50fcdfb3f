package repository

import (
	"clinica-ginecologica/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultationTypeRepository interface {
	Create(db *gorm.DB, consultationType *entity.ConsultationType) error
	FindActive(db *gorm.DB) ([]entity.ConsultationType, error)
	Count(db *gorm.DB) (int64, error)
}
