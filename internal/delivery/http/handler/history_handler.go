package handler

import (
	"net/http"

	"clinica-ginecologica/internal/delivery/http/view"
	"clinica-ginecologica/internal/usecase"
)

type HistoryHandler struct {
	historyUsecase usecase.HistoryUsecase
	renderer       *view.Renderer
}

func NewHistoryHandler(historyUsecase usecase.HistoryUsecase, renderer *view.Renderer) *HistoryHandler {
	return &HistoryHandler{
		historyUsecase: historyUsecase,
		renderer:       renderer,
	}
}

func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.historyUsecase.ListHistory(r.Context(), currentPatientID(r))
	if err != nil {
		h.renderer.InternalError(w, r)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "history", "Historial clínico", history)
}

func (h *HistoryHandler) GetHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderer.NotFound(w, r)
		return
	}

	entry, err := h.historyUsecase.GetHistoryEntry(r.Context(), currentPatientID(r), id)
	if err != nil {
		switch err {
		case usecase.ErrHistoryEntryNotFound:
			h.renderer.NotFound(w, r)
		case usecase.ErrForbidden:
			redirectWithFlash(w, r, "/historial", view.FlashError, "No tienes permiso para ver este registro.")
		default:
			h.renderer.InternalError(w, r)
		}
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "history_detail", "Detalle de consulta", entry)
}
