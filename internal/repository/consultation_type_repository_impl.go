package repository

import (
	"clinica-ginecologica/internal/domain/entity"
	domainRepo "clinica-ginecologica/internal/domain/repository"

	"gorm.io/gorm"
)

type consultationTypeRepository struct{}

func NewConsultationTypeRepository() domainRepo.ConsultationTypeRepository {
	return &consultationTypeRepository{}
}

func (r *consultationTypeRepository) Create(db *gorm.DB, consultationType *entity.ConsultationType) error {
	return db.Create(consultationType).Error
}

func (r *consultationTypeRepository) FindActive(db *gorm.DB) ([]entity.ConsultationType, error) {
	var types []entity.ConsultationType
	err := db.Where("is_active = ?", true).Order("id ASC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *consultationTypeRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.ConsultationType{}).Count(&count).Error
	return count, err
}
