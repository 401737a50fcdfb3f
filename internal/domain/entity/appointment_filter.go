package entity

// AppointmentFilter selects which of a patient's appointments to list.
type AppointmentFilter string

const (
	AppointmentFilterUpcoming AppointmentFilter = "upcoming"
	AppointmentFilterPast     AppointmentFilter = "past"
	AppointmentFilterAll      AppointmentFilter = "all"
)
