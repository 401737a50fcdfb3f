package dto

import "time"

// Request DTOs

type UpdateProfileRequest struct {
	Phone                string `form:"telefono" json:"phone" validate:"omitempty,max=20"`
	Address              string `form:"direccion" json:"address" validate:"omitempty,max=200"`
	BloodType            string `form:"tipo_sangre" json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies            string `form:"alergias" json:"allergies"`
	FamilyHistory        string `form:"antecedentes_familiares" json:"family_history"`
	LastMenstruationDate string `form:"fecha_ultima_menstruacion" json:"last_menstruation_date"` // Format: YYYY-MM-DD
	PreviousPregnancies  int    `form:"embarazos_previos" json:"previous_pregnancies" validate:"gte=0"`
	Births               int    `form:"partos" json:"births" validate:"gte=0"`
	Cesareans            int    `form:"cesareas" json:"cesareans" validate:"gte=0"`
	Miscarriages         int    `form:"abortos" json:"miscarriages" validate:"gte=0"`
	ContraceptiveMethod  string `form:"metodo_anticonceptivo" json:"contraceptive_method" validate:"omitempty,max=100"`
	CurrentPassword      string `form:"password_actual" json:"-"`
	NewPassword          string `form:"password_nuevo" json:"-" validate:"omitempty,min=6"`
}

// Response DTOs

type PatientResponse struct {
	ID                    int64     `json:"id"`
	Email                 string    `json:"email"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	FullName              string    `json:"full_name"`
	NationalID            string    `json:"national_id"`
	BirthDate             string    `json:"birth_date"`
	BirthDateInput        string    `json:"-"`
	Age                   int       `json:"age"`
	Phone                 string    `json:"phone,omitempty"`
	Address               string    `json:"address,omitempty"`
	BloodType             string    `json:"blood_type,omitempty"`
	Allergies             string    `json:"allergies,omitempty"`
	FamilyHistory         string    `json:"family_history,omitempty"`
	LastMenstruationDate  string    `json:"last_menstruation_date,omitempty"`
	LastMenstruationInput string    `json:"-"`
	PreviousPregnancies   int       `json:"previous_pregnancies"`
	Births                int       `json:"births"`
	Cesareans             int       `json:"cesareans"`
	Miscarriages          int       `json:"miscarriages"`
	ContraceptiveMethod   string    `json:"contraceptive_method,omitempty"`
	RegisteredAt          time.Time `json:"registered_at"`
}
