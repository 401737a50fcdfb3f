package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

// State transitions:
//
//	pending   → confirmed | cancelled
//	confirmed → completed | cancelled
//	completed, cancelled are terminal
const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists every status in display order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

// HoldingStatuses are the statuses that occupy a doctor's slot.
var HoldingStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
}

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
	AppointmentStatusCompleted: {},
	AppointmentStatusCancelled: {},
}

// Appointment is a scheduled consultation between a patient and a doctor
type Appointment struct {
	ID               int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID        int64             `gorm:"not null;index" json:"patient_id"`
	DoctorID         int64             `gorm:"not null;index:idx_appointments_doctor_slot" json:"doctor_id"`
	ScheduledAt      time.Time         `gorm:"not null;index:idx_appointments_doctor_slot" json:"scheduled_at"`
	ConsultationType string            `gorm:"type:varchar(100);not null" json:"consultation_type"`
	Reason           string            `gorm:"type:text" json:"reason,omitempty"`
	Status           AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes            string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// CanTransitionTo reports whether the state machine allows moving to next.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, s := range appointmentTransitions[a.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// IsTerminal checks if no further transition is possible
func (a *Appointment) IsTerminal() bool {
	return len(appointmentTransitions[a.Status]) == 0
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() bool {
	return a.transition(AppointmentStatusCancelled)
}

// Confirm changes appointment status to confirmed
func (a *Appointment) Confirm() bool {
	return a.transition(AppointmentStatusConfirmed)
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() bool {
	return a.transition(AppointmentStatusCompleted)
}

func (a *Appointment) transition(next AppointmentStatus) bool {
	if !a.CanTransitionTo(next) {
		return false
	}
	a.Status = next
	return true
}
