package database

import (
	"context"
	"fmt"

	"clinica-ginecologica/internal/domain/entity"
	domainRepo "clinica-ginecologica/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var seedDoctors = []entity.Doctor{
	{
		FirstName:           "María Elena",
		LastName:            "García López",
		Specialty:           "Ginecología y Obstetricia",
		ProfessionalLicense: "12345678",
		Phone:               "555-0101",
		Email:               "dra.garcia@clinica.com",
	},
	{
		FirstName:           "Ana Patricia",
		LastName:            "Rodríguez Sánchez",
		Specialty:           entity.DefaultSpecialty,
		ProfessionalLicense: "87654321",
		Phone:               "555-0102",
		Email:               "dra.rodriguez@clinica.com",
	},
}

var seedConsultationTypes = []entity.ConsultationType{
	{Name: "Consulta General", Description: "Revisión ginecológica general", DurationMinutes: 30},
	{Name: "Control Prenatal", Description: "Seguimiento de embarazo", DurationMinutes: 45},
	{Name: "Papanicolau", Description: "Citología cervical", DurationMinutes: 30},
	{Name: "Ultrasonido", Description: "Ecografía pélvica o transvaginal", DurationMinutes: 40},
	{Name: "Planificación Familiar", Description: "Asesoría anticonceptiva", DurationMinutes: 30},
	{Name: "Colposcopía", Description: "Examen del cuello uterino", DurationMinutes: 45},
	{Name: "Control Post-parto", Description: "Revisión después del parto", DurationMinutes: 30},
	{Name: "Urgencia", Description: "Consulta de urgencia", DurationMinutes: 60},
}

// SeedResult reports how many catalog rows a Seed call inserted.
type SeedResult struct {
	Doctors           int
	ConsultationTypes int
}

// Seed inserts the demo doctors and the consultation-type catalog. Each
// catalog is only filled when its table is empty, so reruns are no-ops.
func Seed(ctx context.Context, db *gorm.DB, log *logrus.Logger, doctorRepo domainRepo.DoctorRepository, consultationTypeRepo domainRepo.ConsultationTypeRepository) (*SeedResult, error) {
	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &SeedResult{}

	doctorCount, err := doctorRepo.Count(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to count doctors: %w", err)
	}
	if doctorCount == 0 {
		for _, d := range seedDoctors {
			doctor := d
			doctor.IsActive = true
			if err := doctorRepo.Create(tx, &doctor); err != nil {
				return nil, fmt.Errorf("failed to seed doctor %s: %w", doctor.Email, err)
			}
			result.Doctors++
		}
	}

	typeCount, err := consultationTypeRepo.Count(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to count consultation types: %w", err)
	}
	if typeCount == 0 {
		for _, ct := range seedConsultationTypes {
			consultationType := ct
			consultationType.IsActive = true
			if err := consultationTypeRepo.Create(tx, &consultationType); err != nil {
				return nil, fmt.Errorf("failed to seed consultation type %s: %w", consultationType.Name, err)
			}
			result.ConsultationTypes++
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit seed: %w", err)
	}

	log.WithFields(logrus.Fields{
		"doctors":            result.Doctors,
		"consultation_types": result.ConsultationTypes,
	}).Info("Seed data applied")

	return result, nil
}
