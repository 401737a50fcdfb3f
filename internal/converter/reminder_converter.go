package converter

import (
	"time"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
)

func ReminderToResponse(reminder *entity.Reminder, loc *time.Location) *dto.ReminderResponse {
	if reminder == nil {
		return nil
	}

	local := reminder.RemindAt.In(loc)
	return &dto.ReminderResponse{
		ID:          reminder.ID,
		Type:        reminder.Type,
		Title:       reminder.Title,
		Description: reminder.Description,
		RemindAt:    local,
		Date:        local.Format(DisplayDateLayout),
		Time:        local.Format(DisplayTimeLayout),
		Status:      string(reminder.Status),
		IsActive:    reminder.Status == entity.ReminderStatusActive,
	}
}

func RemindersToResponses(reminders []entity.Reminder, loc *time.Location) []dto.ReminderResponse {
	responses := make([]dto.ReminderResponse, len(reminders))
	for i := range reminders {
		responses[i] = *ReminderToResponse(&reminders[i], loc)
	}
	return responses
}
