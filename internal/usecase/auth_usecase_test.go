package usecase

import (
	"context"
	"testing"
	"time"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/pkg/jwt"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesPatient(t *testing.T) {
	f := newFixture(t)

	patient := f.register(t, "Lucia@Example.com", "MALU900514")

	assert.Equal(t, "lucia@example.com", patient.Email)
	assert.Equal(t, "Lucía Martínez", patient.FullName)
	assert.Equal(t, "14/05/1990", patient.BirthDate)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.PatientsRegisteredTotal))

	var stored entity.Patient
	require.NoError(t, f.db.First(&stored, patient.ID).Error)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.True(t, stored.IsActive)

	var audits int64
	require.NoError(t, f.db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionPatientRegister).Count(&audits).Error)
	assert.Equal(t, int64(1), audits)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	f := newFixture(t)
	f.register(t, "lucia@example.com", "MALU900514")

	_, err := f.auth.Register(context.Background(), &dto.RegisterRequest{
		Email: "LUCIA@example.com", Password: "secreto123", FirstName: "Otra", LastName: "Persona",
		NationalID: "OTRA000101", BirthDate: "1985-01-01",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = f.auth.Register(context.Background(), &dto.RegisterRequest{
		Email: "otra@example.com", Password: "secreto123", FirstName: "Otra", LastName: "Persona",
		NationalID: "MALU900514", BirthDate: "1985-01-01",
	})
	assert.ErrorIs(t, err, ErrDuplicateNationalID)

	var count int64
	require.NoError(t, f.db.Model(&entity.Patient{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterValidatesBirthDate(t *testing.T) {
	f := newFixture(t)
	req := &dto.RegisterRequest{
		Email: "a@example.com", Password: "secreto123", FirstName: "A", LastName: "B", NationalID: "X1",
	}

	req.BirthDate = "14/05/1990"
	_, err := f.auth.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	req.BirthDate = time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	_, err = f.auth.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidBirthDate)

	// Today in the clinic is not a past date either
	req.BirthDate = f.futureDate(0)
	_, err = f.auth.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidBirthDate)

	req.BirthDate = f.futureDate(-1)
	_, err = f.auth.Register(context.Background(), req)
	assert.NoError(t, err)
}

func TestLoginOpensSession(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")

	session, err := f.auth.Login(context.Background(), &dto.LoginRequest{Email: " LUCIA@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, patient.ID, session.PatientID)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, int64(3600), session.ExpiresIn)

	key := jwt.SessionKey(patient.ID, session.TokenID)
	assert.True(t, f.redis.Exists(key))
	assert.Equal(t, time.Hour, f.redis.TTL(key))
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.LoginsTotal.WithLabelValues("success")))

	require.NoError(t, f.auth.Logout(context.Background(), patient.ID, session.TokenID))
	assert.False(t, f.redis.Exists(key))
}

func TestLoginInvalidCredentialsAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")

	_, err := f.auth.Login(context.Background(), &dto.LoginRequest{Email: "lucia@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login(context.Background(), &dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, f.db.Model(&entity.Patient{}).Where("id = ?", patient.ID).Update("is_active", false).Error)
	_, err = f.auth.Login(context.Background(), &dto.LoginRequest{Email: "lucia@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Equal(t, float64(3), testutil.ToFloat64(f.metrics.LoginsTotal.WithLabelValues("failure")))
}
