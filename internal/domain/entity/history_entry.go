package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntry is the clinical record of a consultation. Rows are never updated.
type HistoryEntry struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID        int64     `gorm:"not null;index" json:"patient_id"`
	DoctorID         int64     `gorm:"not null;index" json:"doctor_id"`
	AppointmentID    *int64    `gorm:"index" json:"appointment_id,omitempty"`
	ConsultationDate time.Time `gorm:"not null;index" json:"consultation_date"`
	ConsultationType string    `gorm:"type:varchar(100)" json:"consultation_type,omitempty"`

	Reason       string `gorm:"type:text" json:"reason,omitempty"`
	Symptoms     string `gorm:"type:text" json:"symptoms,omitempty"`
	PhysicalExam string `gorm:"type:text" json:"physical_exam,omitempty"`
	Diagnosis    string `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment    string `gorm:"type:text" json:"treatment,omitempty"`

	WeightKg      decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"weight_kg"`
	HeightCm      decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"height_cm"`
	BloodPressure string              `gorm:"type:varchar(20)" json:"blood_pressure,omitempty"`
	TemperatureC  decimal.NullDecimal `gorm:"type:decimal(4,1)" json:"temperature_c"`

	StudiesRequested string `gorm:"type:text" json:"studies_requested,omitempty"`
	StudyResults     string `gorm:"type:text" json:"study_results,omitempty"`

	Observations string     `gorm:"type:text" json:"observations,omitempty"`
	FollowUpDate *time.Time `gorm:"type:date" json:"follow_up_date,omitempty"`
}

func (HistoryEntry) TableName() string {
	return "history_entries"
}
