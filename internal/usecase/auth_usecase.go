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
	"clinica-ginecologica/pkg/jwt"
	"clinica-ginecologica/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrDuplicateNationalID = errors.New("national id already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidBirthDate    = errors.New("birth date must be in the past")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.PatientResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, patientID int64, tokenID string) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	loc          *time.Location
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	metrics      *metrics.Collector
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	metrics *metrics.Collector,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		loc:          loc,
		patientRepo:  patientRepo,
		auditService: auditService,
		jwtService:   jwtService,
		redisClient:  redisClient,
		metrics:      metrics,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.PatientResponse, error) {
	email := normalizeEmail(req.Email)
	nationalID := strings.TrimSpace(req.NationalID)

	birthDate, err := parseCalendarDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	if !birthDate.Before(calendarToday(time.Now(), u.loc)) {
		return nil, ErrInvalidBirthDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.patientRepo.ExistsByEmail(tx, email)
	if err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	exists, err = u.patientRepo.ExistsByNationalID(tx, nationalID)
	if err != nil {
		u.log.Warnf("Failed to check national id uniqueness: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateNationalID
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	patient := &entity.Patient{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		NationalID:   nationalID,
		BirthDate:    birthDate,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		IsActive:     true,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		// A concurrent registration can still slip past the checks above
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDuplicateEmail
		}
		if isDuplicateKeyError(err, "national_id") {
			return nil, ErrDuplicateNationalID
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patient.ID, entity.AuditActionPatientRegister, "patient", patient.ID, map[string]interface{}{
		"email":       patient.Email,
		"national_id": patient.NationalID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.metrics.PatientsRegisteredTotal.Inc()
	u.log.Infof("Patient registered: id=%d", patient.ID)
	return converter.PatientToResponse(patient, time.Now().In(u.loc)), nil
}

// Login verifies credentials and opens a session. Unknown emails, inactive
// accounts and wrong passwords all yield ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), normalizeEmail(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil || !patient.IsActive {
		u.metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(req.Password)); err != nil {
		u.metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.jwtService.GenerateSessionToken(patient.ID, patient.Email)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	ttl := u.jwtService.GetSessionExpiry()
	if err := u.redisClient.Set(ctx, jwt.SessionKey(patient.ID, tokenID), "valid", ttl).Err(); err != nil {
		u.log.Warnf("Failed to store session in Redis: %+v", err)
		return nil, err
	}

	// Losing an audit row must not lock the patient out
	if err := u.auditService.LogEvent(ctx, u.db, &patient.ID, entity.AuditActionPatientLogin, entity.JSON{
		"token_id": tokenID,
	}); err != nil {
		u.log.Warnf("Failed to audit login for patient %d: %+v", patient.ID, err)
	}

	u.metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &dto.SessionResponse{
		Token:     token,
		TokenID:   tokenID,
		PatientID: patient.ID,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, patientID int64, tokenID string) error {
	if err := u.redisClient.Del(ctx, jwt.SessionKey(patientID, tokenID)).Err(); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}
