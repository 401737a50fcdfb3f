package entity

// ConsultationTypeCount is one row of a group-by on appointment consultation type.
type ConsultationTypeCount struct {
	ConsultationType string
	Total            int64
}

// StatusCount is one row of a group-by on appointment status.
type StatusCount struct {
	Status AppointmentStatus
	Total  int64
}
