package dto

type DoctorResponse struct {
	ID                  int64  `json:"id"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	DisplayName         string `json:"display_name"`
	Specialty           string `json:"specialty"`
	ProfessionalLicense string `json:"professional_license,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Email               string `json:"email,omitempty"`
}

type ConsultationTypeResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
}
