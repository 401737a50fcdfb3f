package dto

// Request DTOs

type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
	Next     string `form:"next" json:"-"`
}

type RegisterRequest struct {
	Email      string `form:"email" json:"email" validate:"required,email,max=120"`
	Password   string `form:"password" json:"password" validate:"required,min=6"`
	FirstName  string `form:"nombre" json:"first_name" validate:"required,max=100"`
	LastName   string `form:"apellido" json:"last_name" validate:"required,max=100"`
	NationalID string `form:"cedula" json:"national_id" validate:"required,max=20"`
	BirthDate  string `form:"fecha_nacimiento" json:"birth_date" validate:"required"` // Format: YYYY-MM-DD
	Phone      string `form:"telefono" json:"phone" validate:"omitempty,max=20"`
	Address    string `form:"direccion" json:"address" validate:"omitempty,max=200"`
}

// Response DTOs

type SessionResponse struct {
	Token     string `json:"token"`
	TokenID   string `json:"token_id"`
	PatientID int64  `json:"patient_id"`
	ExpiresIn int64  `json:"expires_in"`
}
