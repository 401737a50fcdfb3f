package handler

import (
	"net/http"

	"clinica-ginecologica/internal/delivery/http/view"
	"clinica-ginecologica/internal/usecase"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	reportUsecase    usecase.ReportUsecase
	renderer         *view.Renderer
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, reportUsecase usecase.ReportUsecase, renderer *view.Renderer) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		reportUsecase:    reportUsecase,
		renderer:         renderer,
	}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), currentPatientID(r))
	if err != nil {
		h.renderer.InternalError(w, r)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "dashboard", "Inicio", dashboard)
}

func (h *DashboardHandler) Reports(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetReport(r.Context(), currentPatientID(r))
	if err != nil {
		h.renderer.InternalError(w, r)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "reports", "Reportes", report)
}
