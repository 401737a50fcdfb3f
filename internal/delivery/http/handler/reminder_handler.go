package handler

import (
	"errors"
	"net/http"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/delivery/http/view"
	"clinica-ginecologica/internal/usecase"
	"clinica-ginecologica/pkg/validator"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
	validator       *validator.CustomValidator
	renderer        *view.Renderer
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase, validator *validator.CustomValidator, renderer *view.Renderer) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
		validator:       validator,
		renderer:        renderer,
	}
}

func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderUsecase.ListReminders(r.Context(), currentPatientID(r))
	if err != nil {
		h.renderer.InternalError(w, r)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "reminders", "Recordatorios", reminders)
}

func (h *ReminderHandler) NewReminderPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, "reminder_new", "Nuevo recordatorio", nil)
}

func (h *ReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	const formURL = "/recordatorios/nuevo"

	var req dto.CreateReminderRequest
	if err := decodeForm(r, &req); err != nil {
		redirectWithFlash(w, r, formURL, view.FlashError, formErrorMessage(err))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		redirectWithFlash(w, r, formURL, view.FlashError, h.validator.FirstMessage(err))
		return
	}

	if _, err := h.reminderUsecase.CreateReminder(r.Context(), currentPatientID(r), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			redirectWithFlash(w, r, formURL, view.FlashError, msgInvalidDate)
		case errors.Is(err, usecase.ErrInvalidTimeFormat):
			redirectWithFlash(w, r, formURL, view.FlashError, msgInvalidTime)
		default:
			h.renderer.InternalError(w, r)
		}
		return
	}

	redirectWithFlash(w, r, "/recordatorios", view.FlashSuccess, "Recordatorio creado exitosamente.")
}

func (h *ReminderHandler) CompleteReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderer.NotFound(w, r)
		return
	}

	if err := h.reminderUsecase.CompleteReminder(r.Context(), currentPatientID(r), id); err != nil {
		switch err {
		case usecase.ErrReminderNotFound:
			h.renderer.NotFound(w, r)
		case usecase.ErrForbidden:
			redirectWithFlash(w, r, "/recordatorios", view.FlashError, msgForbidden)
		default:
			h.renderer.InternalError(w, r)
		}
		return
	}

	redirectWithFlash(w, r, "/recordatorios", view.FlashSuccess, "Recordatorio marcado como completado.")
}
