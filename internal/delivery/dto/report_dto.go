package dto

type CountResponse struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

type ReportResponse struct {
	TotalAppointments     int64           `json:"total_appointments"`
	ByStatus              []CountResponse `json:"by_status"`
	ByConsultationType    []CountResponse `json:"by_consultation_type"`
	HistoryEntriesPerYear []CountResponse `json:"history_entries_per_year"`
}

type DashboardResponse struct {
	Patient              PatientResponse        `json:"patient"`
	UpcomingAppointments []AppointmentResponse  `json:"upcoming_appointments"`
	UpcomingReminders    []ReminderResponse     `json:"upcoming_reminders"`
	RecentHistory        []HistoryEntryResponse `json:"recent_history"`
}
