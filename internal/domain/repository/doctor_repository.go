package repository

import (
	"clinica-ginecologica/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int64) (*entity.Doctor, error)
	FindByIDs(db *gorm.DB, ids []int64) ([]entity.Doctor, error)
	FindActive(db *gorm.DB) ([]entity.Doctor, error)
	Count(db *gorm.DB) (int64, error)
}
