package http

import (
	"net/http"

	"clinica-ginecologica/internal/delivery/http/handler"
	"clinica-ginecologica/internal/delivery/http/middleware"
	"clinica-ginecologica/internal/delivery/http/view"
	"clinica-ginecologica/pkg/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	renderer           *view.Renderer
	metrics            *metrics.Collector
	authHandler        *handler.AuthHandler
	dashboardHandler   *handler.DashboardHandler
	profileHandler     *handler.ProfileHandler
	appointmentHandler *handler.AppointmentHandler
	historyHandler     *handler.HistoryHandler
	reminderHandler    *handler.ReminderHandler
	healthHandler      *handler.HealthHandler
	authMiddleware     *middleware.AuthMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
	recoverMiddleware  *middleware.RecoverMiddleware
}

func NewRouter(
	renderer *view.Renderer,
	metrics *metrics.Collector,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	profileHandler *handler.ProfileHandler,
	appointmentHandler *handler.AppointmentHandler,
	historyHandler *handler.HistoryHandler,
	reminderHandler *handler.ReminderHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	recoverMiddleware *middleware.RecoverMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		renderer:           renderer,
		metrics:            metrics,
		authHandler:        authHandler,
		dashboardHandler:   dashboardHandler,
		profileHandler:     profileHandler,
		appointmentHandler: appointmentHandler,
		historyHandler:     historyHandler,
		reminderHandler:    reminderHandler,
		healthHandler:      healthHandler,
		authMiddleware:     authMiddleware,
		loggingMiddleware:  loggingMiddleware,
		metricsMiddleware:  metricsMiddleware,
		recoverMiddleware:  recoverMiddleware,
	}
}

// Setup registers every route and returns the fully wrapped handler.
func (r *Router) Setup() http.Handler {
	r.router.Use(r.metricsMiddleware.Handle)
	r.router.Use(r.authMiddleware.LoadSession)

	// Operational endpoints
	r.router.HandleFunc("/health", r.healthHandler.Health).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	// Public pages (visitors with a session go to the dashboard)
	guest := r.router.NewRoute().Subrouter()
	guest.Use(r.authMiddleware.RedirectAuthenticated("/dashboard"))
	guest.HandleFunc("/", r.authHandler.Index).Methods(http.MethodGet)
	guest.HandleFunc("/login", r.authHandler.LoginPage).Methods(http.MethodGet)
	guest.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	guest.HandleFunc("/registro", r.authHandler.RegisterPage).Methods(http.MethodGet)
	guest.HandleFunc("/registro", r.authHandler.Register).Methods(http.MethodPost)

	// JSON API
	api := r.router.PathPrefix("/api").Subrouter()
	api.Use(r.authMiddleware.RequireAPISession)
	api.HandleFunc("/horarios-disponibles", r.appointmentHandler.AvailableSlots).Methods(http.MethodGet)

	// Patient pages
	protected := r.router.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.RequireSession)
	protected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard", r.dashboardHandler.Dashboard).Methods(http.MethodGet)
	protected.HandleFunc("/reportes", r.dashboardHandler.Reports).Methods(http.MethodGet)

	protected.HandleFunc("/mi-perfil", r.profileHandler.Profile).Methods(http.MethodGet)
	protected.HandleFunc("/mi-perfil/editar", r.profileHandler.EditProfilePage).Methods(http.MethodGet)
	protected.HandleFunc("/mi-perfil/editar", r.profileHandler.UpdateProfile).Methods(http.MethodPost)
	protected.HandleFunc("/mi-perfil/actividad", r.profileHandler.Activity).Methods(http.MethodGet)

	protected.HandleFunc("/citas", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/citas/nueva", r.appointmentHandler.NewAppointmentPage).Methods(http.MethodGet)
	protected.HandleFunc("/citas/nueva", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/citas/{id:[0-9]+}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/citas/{id:[0-9]+}/cancelar", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	protected.HandleFunc("/historial", r.historyHandler.ListHistory).Methods(http.MethodGet)
	protected.HandleFunc("/historial/{id:[0-9]+}", r.historyHandler.GetHistoryEntry).Methods(http.MethodGet)

	protected.HandleFunc("/recordatorios", r.reminderHandler.ListReminders).Methods(http.MethodGet)
	protected.HandleFunc("/recordatorios/nuevo", r.reminderHandler.NewReminderPage).Methods(http.MethodGet)
	protected.HandleFunc("/recordatorios/nuevo", r.reminderHandler.CreateReminder).Methods(http.MethodPost)
	protected.HandleFunc("/recordatorios/{id:[0-9]+}/completar", r.reminderHandler.CompleteReminder).Methods(http.MethodPost)

	r.router.NotFoundHandler = http.HandlerFunc(r.renderer.NotFound)

	// Outermost: panics become the 500 page, every request is logged (404s included)
	return r.recoverMiddleware.Handle(r.loggingMiddleware.Handle(r.router))
}
