package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID         int64  `form:"medico_id" json:"doctor_id" validate:"required,min=1"`
	Date             string `form:"fecha" json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time             string `form:"hora" json:"time" validate:"required"`  // Format: HH:MM
	ConsultationType string `form:"tipo_consulta" json:"consultation_type" validate:"required,max=100"`
	Reason           string `form:"motivo" json:"reason"`
}

type AvailableSlotsQuery struct {
	Date     string `form:"fecha"` // Format: YYYY-MM-DD
	DoctorID int64  `form:"medico_id"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               int64     `json:"id"`
	PatientID        int64     `json:"patient_id"`
	DoctorID         int64     `json:"doctor_id"`
	DoctorName       string    `json:"doctor_name"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	ConsultationType string    `json:"consultation_type"`
	Reason           string    `json:"reason,omitempty"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CanCancel        bool      `json:"can_cancel"`
	CreatedAt        time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Filter       string                `json:"filter"`
	Total        int                   `json:"total"`
}

type AppointmentDetailResponse struct {
	Appointment AppointmentResponse   `json:"appointment"`
	Doctor      *DoctorResponse       `json:"doctor,omitempty"`
	History     *HistoryEntryResponse `json:"history,omitempty"`
}

type AvailableSlotsResponse struct {
	Slots []string `json:"horarios"`
}

type BookingOptionsResponse struct {
	Doctors           []DoctorResponse           `json:"doctors"`
	ConsultationTypes []ConsultationTypeResponse `json:"consultation_types"`
	MinDate           string                     `json:"min_date"`
}
