package usecase

import (
	"context"
	"testing"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")
	ctx := context.Background()

	updated, err := f.profile.UpdateProfile(ctx, patient.ID, &dto.UpdateProfileRequest{
		Phone:                "555-2222",
		BloodType:            "O+",
		LastMenstruationDate: "2030-02-20",
		PreviousPregnancies:  2,
		Births:               1,
		Cesareans:            1,
		ContraceptiveMethod:  "DIU",
	})
	require.NoError(t, err)
	assert.Equal(t, "555-2222", updated.Phone)
	assert.Equal(t, "20/02/2030", updated.LastMenstruationDate)
	assert.Equal(t, 2, updated.PreviousPregnancies)

	// Blank menstruation date keeps the stored value
	updated, err = f.profile.UpdateProfile(ctx, patient.ID, &dto.UpdateProfileRequest{Phone: "555-3333", PreviousPregnancies: 2})
	require.NoError(t, err)
	assert.Equal(t, "20/02/2030", updated.LastMenstruationDate)
	assert.Equal(t, "555-3333", updated.Phone)

	activity, err := f.profile.GetActivity(ctx, patient.ID)
	require.NoError(t, err)
	require.Equal(t, 3, activity.Total)
	assert.Equal(t, entity.AuditActionProfileUpdate, activity.Logs[0].Action)
	assert.Equal(t, entity.AuditActionPatientRegister, activity.Logs[2].Action)
}

func TestUpdateProfileValidation(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")
	ctx := context.Background()

	_, err := f.profile.UpdateProfile(ctx, patient.ID, &dto.UpdateProfileRequest{Births: -1})
	assert.ErrorIs(t, err, ErrNegativeObstetricCount)

	_, err = f.profile.UpdateProfile(ctx, patient.ID, &dto.UpdateProfileRequest{LastMenstruationDate: "ayer"})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = f.profile.UpdateProfile(ctx, 9999, &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")
	ctx := context.Background()

	_, err := f.profile.UpdateProfile(ctx, patient.ID, &dto.UpdateProfileRequest{CurrentPassword: "incorrecta", NewPassword: "nuevo123"})
	assert.ErrorIs(t, err, ErrInvalidCurrentPassword)

	_, err = f.profile.UpdateProfile(ctx, patient.ID, &dto.UpdateProfileRequest{CurrentPassword: "secreto123", NewPassword: "nuevo123"})
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "lucia@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "lucia@example.com", Password: "nuevo123"})
	assert.NoError(t, err)
}

func TestGetProfileDerivedFields(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")

	profile, err := f.profile.GetProfile(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lucía Martínez", profile.FullName)
	assert.Equal(t, "1990-05-14", profile.BirthDateInput)
	assert.GreaterOrEqual(t, profile.Age, 35)
}
