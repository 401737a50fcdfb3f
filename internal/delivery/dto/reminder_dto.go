package dto

import "time"

// Request DTOs

type CreateReminderRequest struct {
	Type        string `form:"tipo" json:"type" validate:"required,oneof=appointment medication study checkup"`
	Title       string `form:"titulo" json:"title" validate:"required,max=200"`
	Description string `form:"descripcion" json:"description"`
	Date        string `form:"fecha" json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time        string `form:"hora" json:"time"`                      // Format: HH:MM, defaults to 09:00
}

// Response DTOs

type ReminderResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	RemindAt    time.Time `json:"remind_at"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	IsActive    bool      `json:"is_active"`
}

type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Total     int                `json:"total"`
}
