package usecase

import (
	"context"
	"testing"
	"time"

	"clinica-ginecologica/config"
	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/repository"
	"clinica-ginecologica/internal/service"
	"clinica-ginecologica/internal/testutil"
	"clinica-ginecologica/pkg/jwt"
	"clinica-ginecologica/pkg/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	redis   *miniredis.Miniredis
	loc     *time.Location
	metrics *metrics.Collector

	auth         AuthUsecase
	profile      PatientProfileUsecase
	appointments AppointmentUsecase
	reminders    ReminderUsecase
	history      HistoryUsecase
	reports      ReportUsecase
	dashboard    DashboardUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	server, client := testutil.NewRedis(t)
	log := testutil.NewLogger()
	loc := testutil.Location(t)
	collector := metrics.NewCollector("test")

	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	consultationTypeRepo := repository.NewConsultationTypeRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	historyRepo := repository.NewHistoryRepository()
	reminderRepo := repository.NewReminderRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)
	slotLockService := service.NewSlotLockService(client, log)
	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "test-secret", TTL: time.Hour})

	return &fixture{
		db:           db,
		redis:        server,
		loc:          loc,
		metrics:      collector,
		auth:         NewAuthUsecase(db, log, loc, patientRepo, auditService, jwtService, client, collector),
		profile:      NewPatientProfileUsecase(db, log, loc, patientRepo, auditLogRepo, auditService),
		appointments: NewAppointmentUsecase(db, log, loc, appointmentRepo, reminderRepo, doctorRepo, consultationTypeRepo, historyRepo, auditService, slotLockService, collector),
		reminders:    NewReminderUsecase(db, log, loc, reminderRepo, auditService, collector),
		history:      NewHistoryUsecase(db, log, loc, historyRepo, doctorRepo),
		reports:      NewReportUsecase(db, log, loc, appointmentRepo, historyRepo),
		dashboard:    NewDashboardUsecase(db, log, loc, patientRepo, appointmentRepo, reminderRepo, historyRepo, doctorRepo),
	}
}

// futureDate returns a clinic-local calendar date days from today as YYYY-MM-DD.
func (f *fixture) futureDate(days int) string {
	return time.Now().In(f.loc).AddDate(0, 0, days).Format("2006-01-02")
}

func (f *fixture) register(t *testing.T, email, nationalID string) *dto.PatientResponse {
	t.Helper()
	patient, err := f.auth.Register(context.Background(), &dto.RegisterRequest{
		Email:      email,
		Password:   "secreto123",
		FirstName:  "Lucía",
		LastName:   "Martínez",
		NationalID: nationalID,
		BirthDate:  "1990-05-14",
		Phone:      "555-0199",
	})
	require.NoError(t, err)
	return patient
}

func (f *fixture) book(t *testing.T, patientID, doctorID int64, date, clock string) *dto.AppointmentResponse {
	t.Helper()
	appointment, err := f.appointments.CreateAppointment(context.Background(), patientID, &dto.CreateAppointmentRequest{
		DoctorID:         doctorID,
		Date:             date,
		Time:             clock,
		ConsultationType: "Consulta General",
		Reason:           "Revisión anual",
	})
	require.NoError(t, err)
	return appointment
}

func (f *fixture) setAppointmentStatus(t *testing.T, id int64, status entity.AppointmentStatus) {
	t.Helper()
	require.NoError(t, f.db.Model(&entity.Appointment{}).Where("id = ?", id).Update("status", status).Error)
}

func TestParseLocalDateTime(t *testing.T) {
	loc := testutil.Location(t)

	at, err := parseLocalDateTime("2030-03-10", "16:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, time.March, 10, 16, 30, 0, 0, loc), at)

	_, err = parseLocalDateTime("10/03/2030", "16:30", loc)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = parseLocalDateTime("2030-03-10", "4pm", loc)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "lucia@example.com", normalizeEmail("  Lucia@Example.COM "))
}

func TestCalendarToday(t *testing.T) {
	loc := testutil.Location(t)

	// 03:00 UTC on the 20th is still the 19th in the clinic
	now := time.Date(2026, 10, 20, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), calendarToday(now, loc))

	now = time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), calendarToday(now, loc))
}
