package handler

import (
	"net/http"
	"strconv"
	"strings"

	"clinica-ginecologica/internal/delivery/http/middleware"
	"clinica-ginecologica/internal/delivery/http/view"

	"github.com/gorilla/mux"
)

const (
	msgForbidden      = "No tienes permiso para acceder a este recurso."
	msgInvalidForm    = "Datos del formulario inválidos."
	msgInvalidDate    = "Formato de fecha inválido."
	msgInvalidTime    = "Formato de hora inválido."
	msgMissingParams  = "Parámetros faltantes"
	msgInvalidParams  = "Parámetros inválidos"
	defaultLandingURL = "/dashboard"
)

// redirectWithFlash queues a flash message and sends the browser to target.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, target, category, message string) {
	view.SetFlash(w, r, category, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// currentPatientID reads the session owner set by the auth middleware.
func currentPatientID(r *http.Request) int64 {
	patientID, _ := middleware.GetPatientIDFromContext(r.Context())
	return patientID
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// safeNext only allows local paths, so the login form cannot bounce to another site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return defaultLandingURL
	}
	return next
}
