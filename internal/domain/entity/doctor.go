package entity

import "fmt"

const DefaultSpecialty = "Ginecología"

// Doctor is a clinic staff member that appointments and history entries are assigned to.
type Doctor struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName           string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName            string `gorm:"type:varchar(100);not null" json:"last_name"`
	Specialty           string `gorm:"type:varchar(100);not null;default:'Ginecología'" json:"specialty"`
	ProfessionalLicense string `gorm:"type:varchar(50)" json:"professional_license,omitempty"`
	Phone               string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email               string `gorm:"type:varchar(120)" json:"email,omitempty"`
	IsActive            bool   `gorm:"not null;default:true;index" json:"is_active"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) DisplayName() string {
	return fmt.Sprintf("Dr(a). %s %s", d.FirstName, d.LastName)
}
