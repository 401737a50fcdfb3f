package usecase

import (
	"context"
	"errors"
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
	ErrReminderNotFound = errors.New("reminder not found")
)

const defaultReminderTime = "09:00"

type ReminderUsecase interface {
	ListReminders(ctx context.Context, patientID int64) (*dto.ReminderListResponse, error)
	CreateReminder(ctx context.Context, patientID int64, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error)
	CompleteReminder(ctx context.Context, patientID, reminderID int64) error
}

type reminderUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	loc          *time.Location
	reminderRepo repository.ReminderRepository
	auditService service.AuditService
	metrics      *metrics.Collector
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	reminderRepo repository.ReminderRepository,
	auditService service.AuditService,
	metrics *metrics.Collector,
) ReminderUsecase {
	return &reminderUsecase{
		db:           db,
		log:          log,
		loc:          loc,
		reminderRepo: reminderRepo,
		auditService: auditService,
		metrics:      metrics,
	}
}

func (u *reminderUsecase) ListReminders(ctx context.Context, patientID int64) (*dto.ReminderListResponse, error) {
	reminders, err := u.reminderRepo.FindByPatient(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find reminders for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.ReminderListResponse{
		Reminders: converter.RemindersToResponses(reminders, u.loc),
		Total:     len(reminders),
	}, nil
}

// CreateReminder stores an active reminder. A blank time means 09:00.
func (u *reminderUsecase) CreateReminder(ctx context.Context, patientID int64, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	clock := strings.TrimSpace(req.Time)
	if clock == "" {
		clock = defaultReminderTime
	}

	remindAt, err := parseLocalDateTime(req.Date, clock, u.loc)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	reminder := &entity.Reminder{
		PatientID:   patientID,
		Type:        req.Type,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		RemindAt:    remindAt.UTC(),
		Status:      entity.ReminderStatusActive,
	}
	if err := u.reminderRepo.Create(tx, reminder); err != nil {
		u.log.Warnf("Failed to create reminder: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionReminderCreate, "reminder", reminder.ID, map[string]interface{}{
		"type":      reminder.Type,
		"title":     reminder.Title,
		"remind_at": reminder.RemindAt,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.metrics.RemindersTotal.WithLabelValues("created").Inc()
	return converter.ReminderToResponse(reminder, u.loc), nil
}

// CompleteReminder marks the reminder completed. Completing it again is a no-op.
func (u *reminderUsecase) CompleteReminder(ctx context.Context, patientID, reminderID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	reminder, err := u.reminderRepo.FindByID(tx, reminderID)
	if err != nil {
		u.log.Warnf("Failed to find reminder %d: %+v", reminderID, err)
		return err
	}
	if reminder == nil {
		return ErrReminderNotFound
	}
	if reminder.PatientID != patientID {
		return ErrForbidden
	}
	if reminder.Status == entity.ReminderStatusCompleted {
		return nil
	}

	oldStatus := reminder.Status
	reminder.Complete()
	if err := u.reminderRepo.UpdateStatus(tx, reminder.ID, reminder.Status); err != nil {
		u.log.Warnf("Failed to complete reminder %d: %+v", reminderID, err)
		return err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionReminderComplete, "reminder", reminder.ID,
		map[string]interface{}{"status": oldStatus},
		map[string]interface{}{"status": reminder.Status},
	); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.metrics.RemindersTotal.WithLabelValues("completed").Inc()
	return nil
}
