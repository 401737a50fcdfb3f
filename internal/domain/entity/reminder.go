package entity

import "time"

type ReminderStatus string

const (
	ReminderStatusActive    ReminderStatus = "active"
	ReminderStatusSent      ReminderStatus = "sent"
	ReminderStatusCompleted ReminderStatus = "completed"
)

// Reminder types
const (
	ReminderTypeAppointment = "appointment"
	ReminderTypeMedication  = "medication"
	ReminderTypeStudy       = "study"
	ReminderTypeCheckup     = "checkup"
)

// AppointmentReminderLead is how far ahead of an appointment its reminder fires.
const AppointmentReminderLead = 24 * time.Hour

// Reminder is a notification record shown to the patient
type Reminder struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int64          `gorm:"not null;index" json:"patient_id"`
	Type        string         `gorm:"type:varchar(50);not null" json:"type"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	RemindAt    time.Time      `gorm:"not null;index" json:"remind_at"`
	Status      ReminderStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// Complete marks the reminder as completed
func (r *Reminder) Complete() {
	r.Status = ReminderStatusCompleted
}
