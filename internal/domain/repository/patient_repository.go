package repository

import (
	"clinica-ginecologica/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int64) (*entity.Patient, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Patient, error)
	ExistsByEmail(db *gorm.DB, email string) (bool, error)
	ExistsByNationalID(db *gorm.DB, nationalID string) (bool, error)
	Update(db *gorm.DB, patient *entity.Patient) error
}
