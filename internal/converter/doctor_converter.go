package converter

import (
	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                  doctor.ID,
		FirstName:           doctor.FirstName,
		LastName:            doctor.LastName,
		DisplayName:         doctor.DisplayName(),
		Specialty:           doctor.Specialty,
		ProfessionalLicense: doctor.ProfessionalLicense,
		Phone:               doctor.Phone,
		Email:               doctor.Email,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorNames indexes display names by doctor id.
func DoctorNames(doctors []entity.Doctor) map[int64]string {
	names := make(map[int64]string, len(doctors))
	for i := range doctors {
		names[doctors[i].ID] = doctors[i].DisplayName()
	}
	return names
}

func ConsultationTypesToResponses(types []entity.ConsultationType) []dto.ConsultationTypeResponse {
	responses := make([]dto.ConsultationTypeResponse, len(types))
	for i, t := range types {
		responses[i] = dto.ConsultationTypeResponse{
			ID:              t.ID,
			Name:            t.Name,
			Description:     t.Description,
			DurationMinutes: t.DurationMinutes,
		}
	}
	return responses
}
