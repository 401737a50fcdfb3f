package handler

import (
	"errors"
	"fmt"
	"net/http"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/delivery/http/view"
	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/usecase"
	"clinica-ginecologica/pkg/response"
	"clinica-ginecologica/pkg/validator"
)

// appointmentFilters maps the ?filtro= values to repository filters.
var appointmentFilters = map[string]entity.AppointmentFilter{
	"proximas": entity.AppointmentFilterUpcoming,
	"pasadas":  entity.AppointmentFilterPast,
	"todas":    entity.AppointmentFilterAll,
}

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	renderer           *view.Renderer
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, renderer *view.Renderer) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		renderer:           renderer,
	}
}

// ListAppointments handles GET /citas?filtro=proximas|pasadas|todas
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	filter, ok := appointmentFilters[r.URL.Query().Get("filtro")]
	if !ok {
		filter = entity.AppointmentFilterUpcoming
	}

	list, err := h.appointmentUsecase.ListAppointments(r.Context(), currentPatientID(r), filter)
	if err != nil {
		h.renderer.InternalError(w, r)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "appointments", "Mis citas", list)
}

// GetAppointment handles GET /citas/{id}
func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderer.NotFound(w, r)
		return
	}

	detail, err := h.appointmentUsecase.GetAppointment(r.Context(), currentPatientID(r), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			h.renderer.NotFound(w, r)
		case usecase.ErrForbidden:
			redirectWithFlash(w, r, "/citas", view.FlashError, "No tienes permiso para ver esta cita.")
		default:
			h.renderer.InternalError(w, r)
		}
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "appointment_detail", "Detalle de cita", detail)
}

// NewAppointmentPage handles GET /citas/nueva
func (h *AppointmentHandler) NewAppointmentPage(w http.ResponseWriter, r *http.Request) {
	options, err := h.appointmentUsecase.GetBookingOptions(r.Context())
	if err != nil {
		h.renderer.InternalError(w, r)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "appointment_new", "Agendar cita", options)
}

// CreateAppointment handles POST /citas/nueva
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	const formURL = "/citas/nueva"

	var req dto.CreateAppointmentRequest
	if err := decodeForm(r, &req); err != nil {
		redirectWithFlash(w, r, formURL, view.FlashError, formErrorMessage(err))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		redirectWithFlash(w, r, formURL, view.FlashError, h.validator.FirstMessage(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), currentPatientID(r), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSchedule):
			redirectWithFlash(w, r, formURL, view.FlashError, "La fecha de la cita debe ser futura.")
		case errors.Is(err, usecase.ErrSlotTaken):
			redirectWithFlash(w, r, formURL, view.FlashError, "Ese horario ya no está disponible. Elige otro.")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			redirectWithFlash(w, r, formURL, view.FlashError, "El médico seleccionado no está disponible.")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			redirectWithFlash(w, r, formURL, view.FlashError, msgInvalidDate)
		case errors.Is(err, usecase.ErrInvalidTimeFormat):
			redirectWithFlash(w, r, formURL, view.FlashError, msgInvalidTime)
		default:
			h.renderer.InternalError(w, r)
		}
		return
	}

	redirectWithFlash(w, r, "/citas", view.FlashSuccess,
		fmt.Sprintf("Cita agendada exitosamente para el %s a las %s", appointment.Date, appointment.Time))
}

// CancelAppointment handles POST /citas/{id}/cancelar
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderer.NotFound(w, r)
		return
	}

	if err := h.appointmentUsecase.CancelAppointment(r.Context(), currentPatientID(r), id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			h.renderer.NotFound(w, r)
		case usecase.ErrForbidden:
			redirectWithFlash(w, r, "/citas", view.FlashError, "No tienes permiso para cancelar esta cita.")
		case usecase.ErrInvalidState:
			redirectWithFlash(w, r, fmt.Sprintf("/citas/%d", id), view.FlashWarning, "Esta cita no puede ser cancelada.")
		default:
			h.renderer.InternalError(w, r)
		}
		return
	}

	redirectWithFlash(w, r, "/citas", view.FlashSuccess, "Cita cancelada exitosamente.")
}

// AvailableSlots handles GET /api/horarios-disponibles?fecha=YYYY-MM-DD&medico_id=<int>
func (h *AppointmentHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	var query dto.AvailableSlotsQuery
	if err := formDecoder.Decode(&query, r.URL.Query()); err != nil {
		response.BadRequest(w, msgInvalidParams)
		return
	}
	if query.Date == "" || query.DoctorID == 0 {
		response.BadRequest(w, msgMissingParams)
		return
	}

	slots, err := h.appointmentUsecase.GetAvailableSlots(r.Context(), query.DoctorID, query.Date)
	if err != nil {
		switch err {
		case usecase.ErrMissingParameter:
			response.BadRequest(w, msgMissingParams)
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Formato de fecha inválido")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, slots)
}
