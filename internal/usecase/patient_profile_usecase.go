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

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
	ErrNegativeObstetricCount = errors.New("obstetric counts must not be negative")
)

const activityLimit = 20

type PatientProfileUsecase interface {
	GetProfile(ctx context.Context, patientID int64) (*dto.PatientResponse, error)
	UpdateProfile(ctx context.Context, patientID int64, req *dto.UpdateProfileRequest) (*dto.PatientResponse, error)
	GetActivity(ctx context.Context, patientID int64) (*dto.AuditLogListResponse, error)
}

type patientProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	loc          *time.Location
	patientRepo  repository.PatientRepository
	auditLogRepo repository.AuditLogRepository
	auditService service.AuditService
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	patientRepo repository.PatientRepository,
	auditLogRepo repository.AuditLogRepository,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:           db,
		log:          log,
		loc:          loc,
		patientRepo:  patientRepo,
		auditLogRepo: auditLogRepo,
		auditService: auditService,
	}
}

func (u *patientProfileUsecase) GetProfile(ctx context.Context, patientID int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient, time.Now().In(u.loc)), nil
}

// UpdateProfile overwrites the editable clinical fields. An empty menstruation
// date keeps the stored one; the password changes only when a new one is given.
func (u *patientProfileUsecase) UpdateProfile(ctx context.Context, patientID int64, req *dto.UpdateProfileRequest) (*dto.PatientResponse, error) {
	if req.PreviousPregnancies < 0 || req.Births < 0 || req.Cesareans < 0 || req.Miscarriages < 0 {
		return nil, ErrNegativeObstetricCount
	}

	var lastMenstruation *time.Time
	if strings.TrimSpace(req.LastMenstruationDate) != "" {
		d, err := parseCalendarDate(req.LastMenstruationDate)
		if err != nil {
			return nil, err
		}
		lastMenstruation = &d
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	passwordChanged := false
	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			return nil, ErrInvalidCurrentPassword
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		patient.PasswordHash = string(hashedPassword)
		passwordChanged = true
	}

	oldValue := editableFields(patient)

	patient.Phone = strings.TrimSpace(req.Phone)
	patient.Address = strings.TrimSpace(req.Address)
	patient.BloodType = strings.TrimSpace(req.BloodType)
	patient.Allergies = req.Allergies
	patient.FamilyHistory = req.FamilyHistory
	if lastMenstruation != nil {
		patient.LastMenstruationDate = lastMenstruation
	}
	patient.PreviousPregnancies = req.PreviousPregnancies
	patient.Births = req.Births
	patient.Cesareans = req.Cesareans
	patient.Miscarriages = req.Miscarriages
	patient.ContraceptiveMethod = strings.TrimSpace(req.ContraceptiveMethod)

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", patientID, err)
		return nil, err
	}

	newValue := editableFields(patient)
	newValue["password_changed"] = passwordChanged
	if err := u.auditService.LogUpdate(ctx, tx, &patient.ID, entity.AuditActionProfileUpdate, "patient", patient.ID, oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient, time.Now().In(u.loc)), nil
}

func (u *patientProfileUsecase) GetActivity(ctx context.Context, patientID int64) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditLogRepo.FindByPatient(u.db.WithContext(ctx), patientID, activityLimit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs, u.loc),
		Total: len(logs),
	}, nil
}

func editableFields(p *entity.Patient) map[string]interface{} {
	fields := map[string]interface{}{
		"phone":                p.Phone,
		"address":              p.Address,
		"blood_type":           p.BloodType,
		"previous_pregnancies": p.PreviousPregnancies,
		"births":               p.Births,
		"cesareans":            p.Cesareans,
		"miscarriages":         p.Miscarriages,
		"contraceptive_method": p.ContraceptiveMethod,
	}
	if p.LastMenstruationDate != nil {
		fields["last_menstruation_date"] = p.LastMenstruationDate.Format("2006-01-02")
	}
	return fields
}
