package service

import (
	"context"
	"strconv"

	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit trail rows inside the caller's transaction.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, patientID *int64, action string, entityName string, entityID int64, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, patientID *int64, action string, entityName string, entityID int64, oldValue, newValue interface{}) error
	LogEvent(ctx context.Context, tx *gorm.DB, patientID *int64, action string, details entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, patientID *int64, action string, entityName string, entityID int64, newValue interface{}) error {
	return s.write(ctx, tx, patientID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": strconv.FormatInt(entityID, 10),
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, patientID *int64, action string, entityName string, entityID int64, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, patientID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": strconv.FormatInt(entityID, 10),
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogEvent logs an action that does not change a row, such as a login.
func (s *auditService) LogEvent(ctx context.Context, tx *gorm.DB, patientID *int64, action string, details entity.JSON) error {
	return s.write(ctx, tx, patientID, action, details)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, patientID *int64, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		PatientID: patientID,
		Action:    action,
		Metadata:  metadata,
	}

	if err := s.auditRepo.Create(tx.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
