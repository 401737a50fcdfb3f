package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinica-ginecologica/internal/converter"
	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/domain/repository"
	"clinica-ginecologica/internal/service"
	"clinica-ginecologica/pkg/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrInvalidSchedule     = errors.New("appointment must be scheduled in the future")
	ErrInvalidState        = errors.New("appointment can no longer be cancelled")
	ErrSlotTaken           = errors.New("doctor already has an appointment at that time")
)

// Bookable day: half-hour slots from 08:00, the last one starting at 17:30.
const (
	slotFirstHour = 8
	slotLastHour  = 17
	slotStep      = 30 * time.Minute
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, patientID int64, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, patientID, appointmentID int64) (*dto.AppointmentDetailResponse, error)
	GetBookingOptions(ctx context.Context) (*dto.BookingOptionsResponse, error)
	CreateAppointment(ctx context.Context, patientID int64, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, patientID, appointmentID int64) error
	GetAvailableSlots(ctx context.Context, doctorID int64, date string) (*dto.AvailableSlotsResponse, error)
}

type appointmentUsecase struct {
	db                   *gorm.DB
	log                  *logrus.Logger
	loc                  *time.Location
	appointmentRepo      repository.AppointmentRepository
	reminderRepo         repository.ReminderRepository
	doctorRepo           repository.DoctorRepository
	consultationTypeRepo repository.ConsultationTypeRepository
	historyRepo          repository.HistoryRepository
	auditService         service.AuditService
	slotLockService      *service.SlotLockService
	metrics              *metrics.Collector
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	appointmentRepo repository.AppointmentRepository,
	reminderRepo repository.ReminderRepository,
	doctorRepo repository.DoctorRepository,
	consultationTypeRepo repository.ConsultationTypeRepository,
	historyRepo repository.HistoryRepository,
	auditService service.AuditService,
	slotLockService *service.SlotLockService,
	metrics *metrics.Collector,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                   db,
		log:                  log,
		loc:                  loc,
		appointmentRepo:      appointmentRepo,
		reminderRepo:         reminderRepo,
		doctorRepo:           doctorRepo,
		consultationTypeRepo: consultationTypeRepo,
		historyRepo:          historyRepo,
		auditService:         auditService,
		slotLockService:      slotLockService,
		metrics:              metrics,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, patientID int64, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	appointments, err := u.appointmentRepo.FindByPatient(db, patientID, filter, time.Now())
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	doctorNames, err := u.doctorNamesFor(db, appointmentDoctorIDs(appointments))
	if err != nil {
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments, doctorNames, u.loc),
		Filter:       string(filter),
		Total:        len(appointments),
	}, nil
}

// GetAppointment returns the appointment with its doctor and the history entry it produced, if any.
func (u *appointmentUsecase) GetAppointment(ctx context.Context, patientID, appointmentID int64) (*dto.AppointmentDetailResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return nil, ErrForbidden
	}

	doctor, err := u.doctorRepo.FindByID(db, appointment.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", appointment.DoctorID, err)
		return nil, err
	}

	entry, err := u.historyRepo.FindByAppointmentID(db, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to find history for appointment %d: %+v", appointment.ID, err)
		return nil, err
	}

	doctorName := ""
	if doctor != nil {
		doctorName = doctor.DisplayName()
	}

	detail := &dto.AppointmentDetailResponse{
		Appointment: *converter.AppointmentToResponse(appointment, doctorName, u.loc),
		Doctor:      converter.DoctorToResponse(doctor),
	}
	if entry != nil {
		detail.History = converter.HistoryEntryToResponse(entry, doctorName, u.loc)
	}
	return detail, nil
}

// GetBookingOptions lists the active doctors and consultation types offered on the booking form.
func (u *appointmentUsecase) GetBookingOptions(ctx context.Context) (*dto.BookingOptionsResponse, error) {
	db := u.db.WithContext(ctx)

	doctors, err := u.doctorRepo.FindActive(db)
	if err != nil {
		u.log.Warnf("Failed to find active doctors: %+v", err)
		return nil, err
	}

	types, err := u.consultationTypeRepo.FindActive(db)
	if err != nil {
		u.log.Warnf("Failed to find active consultation types: %+v", err)
		return nil, err
	}

	return &dto.BookingOptionsResponse{
		Doctors:           converter.DoctorsToResponses(doctors),
		ConsultationTypes: converter.ConsultationTypesToResponses(types),
		MinDate:           time.Now().In(u.loc).Format(converter.InputDateLayout),
	}, nil
}

// CreateAppointment books a pending appointment and its reminder 24h earlier, atomically.
//
// Flow:
// 1. Parse the local date/time and reject anything not strictly in the future
// 2. Verify the doctor exists and is active
// 3. Take the Redis slot lock so concurrent requests for the same slot queue up
// 4. In one transaction: re-check the slot, insert appointment, reminder and audit row
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, patientID int64, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := parseLocalDateTime(req.Date, req.Time, u.loc)
	if err != nil {
		return nil, err
	}
	if !scheduledAt.After(time.Now()) {
		return nil, ErrInvalidSchedule
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsActive {
		return nil, ErrDoctorNotFound
	}

	release, err := u.slotLockService.Acquire(ctx, doctor.ID, scheduledAt)
	if err != nil {
		if errors.Is(err, service.ErrSlotLocked) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to lock slot for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}
	defer release()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	taken, err := u.appointmentRepo.ExistsHoldingAt(tx, doctor.ID, scheduledAt)
	if err != nil {
		u.log.Warnf("Failed to check slot availability: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	consultationType := strings.TrimSpace(req.ConsultationType)
	appointment := &entity.Appointment{
		PatientID:        patientID,
		DoctorID:         doctor.ID,
		ScheduledAt:      scheduledAt.UTC(),
		ConsultationType: consultationType,
		Reason:           strings.TrimSpace(req.Reason),
		Status:           entity.AppointmentStatusPending,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	reminder := &entity.Reminder{
		PatientID:   patientID,
		Type:        entity.ReminderTypeAppointment,
		Title:       fmt.Sprintf("Recordatorio: Cita de %s", consultationType),
		Description: fmt.Sprintf("Tienes una cita mañana a las %s", scheduledAt.Format(converter.DisplayTimeLayout)),
		RemindAt:    scheduledAt.Add(-entity.AppointmentReminderLead).UTC(),
		Status:      entity.ReminderStatusActive,
	}
	if err := u.reminderRepo.Create(tx, reminder); err != nil {
		u.log.Warnf("Failed to create appointment reminder: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID, map[string]interface{}{
		"doctor_id":         appointment.DoctorID,
		"scheduled_at":      appointment.ScheduledAt,
		"consultation_type": appointment.ConsultationType,
		"reminder_id":       reminder.ID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.metrics.AppointmentsTotal.WithLabelValues("booked").Inc()
	u.log.Infof("Appointment created: id=%d, doctor=%d, at=%s", appointment.ID, doctor.ID, appointment.ScheduledAt.Format(time.RFC3339))
	return converter.AppointmentToResponse(appointment, doctor.DisplayName(), u.loc), nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, patientID, appointmentID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return ErrForbidden
	}

	oldStatus := appointment.Status
	if !appointment.Cancel() {
		return ErrInvalidState
	}

	// Conditional update: a concurrent cancel leaves zero rows affected
	affected, err := u.appointmentRepo.TransitionStatus(tx, appointment.ID, entity.HoldingStatuses, appointment.Status)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrInvalidState
	}

	if err := u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionAppointmentCancel, "appointment", appointment.ID,
		map[string]interface{}{"status": oldStatus},
		map[string]interface{}{"status": appointment.Status},
	); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.metrics.AppointmentsTotal.WithLabelValues("cancelled").Inc()
	u.log.Infof("Appointment cancelled: id=%d", appointmentID)
	return nil
}

// GetAvailableSlots lists the doctor's free half-hour slots on the given local date.
func (u *appointmentUsecase) GetAvailableSlots(ctx context.Context, doctorID int64, date string) (*dto.AvailableSlotsResponse, error) {
	if doctorID <= 0 || strings.TrimSpace(date) == "" {
		return nil, ErrMissingParameter
	}

	day, err := time.ParseInLocation(converter.InputDateLayout, strings.TrimSpace(date), u.loc)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	held, err := u.appointmentRepo.FindHoldingByDoctorBetween(u.db.WithContext(ctx), doctorID, day, day.AddDate(0, 0, 1))
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	taken := make(map[string]struct{}, len(held))
	for _, a := range held {
		taken[a.ScheduledAt.In(u.loc).Format(converter.DisplayTimeLayout)] = struct{}{}
	}

	slots := make([]string, 0)
	for _, slot := range daySlots(day) {
		label := slot.Format(converter.DisplayTimeLayout)
		if _, ok := taken[label]; !ok {
			slots = append(slots, label)
		}
	}

	return &dto.AvailableSlotsResponse{Slots: slots}, nil
}

// daySlots generates the bookable start times of a day in the day's location.
func daySlots(day time.Time) []time.Time {
	var slots []time.Time
	for hour := slotFirstHour; hour <= slotLastHour; hour++ {
		for minute := 0; minute < 60; minute += int(slotStep / time.Minute) {
			slots = append(slots, time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()))
		}
	}
	return slots
}

func (u *appointmentUsecase) doctorNamesFor(db *gorm.DB, ids []int64) (map[int64]string, error) {
	doctors, err := u.doctorRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorNames(doctors), nil
}

func appointmentDoctorIDs(appointments []entity.Appointment) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, a := range appointments {
		if _, ok := seen[a.DoctorID]; !ok {
			seen[a.DoctorID] = struct{}{}
			ids = append(ids, a.DoctorID)
		}
	}
	return ids
}
