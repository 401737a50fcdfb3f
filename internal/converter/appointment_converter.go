package converter

import (
	"time"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Date and time are rendered in the clinic location.
func AppointmentToResponse(appointment *entity.Appointment, doctorName string, loc *time.Location) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	local := appointment.ScheduledAt.In(loc)
	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		PatientID:        appointment.PatientID,
		DoctorID:         appointment.DoctorID,
		DoctorName:       doctorName,
		ScheduledAt:      local,
		Date:             local.Format(DisplayDateLayout),
		Time:             local.Format(DisplayTimeLayout),
		ConsultationType: appointment.ConsultationType,
		Reason:           appointment.Reason,
		Status:           string(appointment.Status),
		Notes:            appointment.Notes,
		CanCancel:        appointment.CanTransitionTo(entity.AppointmentStatusCancelled),
		CreatedAt:        appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts appointments, resolving doctor names from the given index
func AppointmentsToResponses(appointments []entity.Appointment, doctorNames map[int64]string, loc *time.Location) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i], doctorNames[appointments[i].DoctorID], loc)
	}
	return responses
}
