package entity

import (
	"fmt"
	"time"
)

// Patient is the registered portal user and the subject of every clinical record.
type Patient struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(256);not null" json:"-"`

	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(100);not null" json:"last_name"`
	NationalID string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"national_id"`
	BirthDate  time.Time `gorm:"type:date;not null" json:"birth_date"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address    string    `gorm:"type:varchar(200)" json:"address,omitempty"`

	BloodType     string `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Allergies     string `gorm:"type:text" json:"allergies,omitempty"`
	FamilyHistory string `gorm:"type:text" json:"family_history,omitempty"`

	LastMenstruationDate *time.Time `gorm:"type:date" json:"last_menstruation_date,omitempty"`
	PreviousPregnancies  int        `gorm:"not null;default:0" json:"previous_pregnancies"`
	Births               int        `gorm:"not null;default:0" json:"births"`
	Cesareans            int        `gorm:"not null;default:0" json:"cesareans"`
	Miscarriages         int        `gorm:"not null;default:0" json:"miscarriages"`
	ContraceptiveMethod  string     `gorm:"type:varchar(100)" json:"contraceptive_method,omitempty"`

	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// AgeAt returns completed years between the birth date and the given day.
func (p *Patient) AgeAt(day time.Time) int {
	age := day.Year() - p.BirthDate.Year()
	if day.Month() < p.BirthDate.Month() ||
		(day.Month() == p.BirthDate.Month() && day.Day() < p.BirthDate.Day()) {
		age--
	}
	return age
}
