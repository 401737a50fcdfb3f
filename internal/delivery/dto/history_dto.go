package dto

type HistoryEntryResponse struct {
	ID               int64  `json:"id"`
	PatientID        int64  `json:"patient_id"`
	DoctorID         int64  `json:"doctor_id"`
	DoctorName       string `json:"doctor_name"`
	AppointmentID    *int64 `json:"appointment_id,omitempty"`
	ConsultationDate string `json:"consultation_date"`
	ConsultationType string `json:"consultation_type,omitempty"`
	Reason           string `json:"reason,omitempty"`
	Symptoms         string `json:"symptoms,omitempty"`
	PhysicalExam     string `json:"physical_exam,omitempty"`
	Diagnosis        string `json:"diagnosis,omitempty"`
	Treatment        string `json:"treatment,omitempty"`
	WeightKg         string `json:"weight_kg,omitempty"`
	HeightCm         string `json:"height_cm,omitempty"`
	BloodPressure    string `json:"blood_pressure,omitempty"`
	TemperatureC     string `json:"temperature_c,omitempty"`
	StudiesRequested string `json:"studies_requested,omitempty"`
	StudyResults     string `json:"study_results,omitempty"`
	Observations     string `json:"observations,omitempty"`
	FollowUpDate     string `json:"follow_up_date,omitempty"`
}

type HistoryListResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}
