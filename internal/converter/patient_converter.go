package converter

import (
	"time"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO, with age as of today.
func PatientToResponse(patient *entity.Patient, today time.Time) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                    patient.ID,
		Email:                 patient.Email,
		FirstName:             patient.FirstName,
		LastName:              patient.LastName,
		FullName:              patient.FullName(),
		NationalID:            patient.NationalID,
		BirthDate:             formatCalendarDate(&patient.BirthDate, DisplayDateLayout),
		BirthDateInput:        formatCalendarDate(&patient.BirthDate, InputDateLayout),
		Age:                   patient.AgeAt(today),
		Phone:                 patient.Phone,
		Address:               patient.Address,
		BloodType:             patient.BloodType,
		Allergies:             patient.Allergies,
		FamilyHistory:         patient.FamilyHistory,
		LastMenstruationDate:  formatCalendarDate(patient.LastMenstruationDate, DisplayDateLayout),
		LastMenstruationInput: formatCalendarDate(patient.LastMenstruationDate, InputDateLayout),
		PreviousPregnancies:   patient.PreviousPregnancies,
		Births:                patient.Births,
		Cesareans:             patient.Cesareans,
		Miscarriages:          patient.Miscarriages,
		ContraceptiveMethod:   patient.ContraceptiveMethod,
		RegisteredAt:          patient.RegisteredAt,
	}
}
