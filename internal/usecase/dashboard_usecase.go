package usecase

import (
	"context"
	"time"

	"clinica-ginecologica/internal/converter"
	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	dashboardAppointmentLimit = 5
	dashboardReminderLimit    = 5
	dashboardHistoryLimit     = 3
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, patientID int64) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	loc             *time.Location
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	reminderRepo    repository.ReminderRepository
	historyRepo     repository.HistoryRepository
	doctorRepo      repository.DoctorRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	reminderRepo repository.ReminderRepository,
	historyRepo repository.HistoryRepository,
	doctorRepo repository.DoctorRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		loc:             loc,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		reminderRepo:    reminderRepo,
		historyRepo:     historyRepo,
		doctorRepo:      doctorRepo,
	}
}

// GetDashboard shows the next pending/confirmed appointments, the next active
// reminders and the most recent history entries.
func (u *dashboardUsecase) GetDashboard(ctx context.Context, patientID int64) (*dto.DashboardResponse, error) {
	now := time.Now()

	var (
		patient      *entity.Patient
		appointments []entity.Appointment
		reminders    []entity.Reminder
		history      []entity.HistoryEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	db := u.db.WithContext(gctx)

	g.Go(func() error {
		var err error
		patient, err = u.patientRepo.FindByID(db, patientID)
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = u.appointmentRepo.FindUpcomingHolding(db, patientID, now, dashboardAppointmentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		reminders, err = u.reminderRepo.FindUpcomingActive(db, patientID, now, dashboardReminderLimit)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = u.historyRepo.FindByPatient(db, patientID, dashboardHistoryLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load dashboard for patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctorIDs := append(appointmentDoctorIDs(appointments), historyDoctorIDs(history)...)
	doctors, err := u.doctorRepo.FindByIDs(u.db.WithContext(ctx), doctorIDs)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	doctorNames := converter.DoctorNames(doctors)

	return &dto.DashboardResponse{
		Patient:              *converter.PatientToResponse(patient, now.In(u.loc)),
		UpcomingAppointments: converter.AppointmentsToResponses(appointments, doctorNames, u.loc),
		UpcomingReminders:    converter.RemindersToResponses(reminders, u.loc),
		RecentHistory:        converter.HistoryEntriesToResponses(history, doctorNames, u.loc),
	}, nil
}
