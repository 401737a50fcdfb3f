package converter

import (
	"testing"
	"time"
	_ "time/tzdata"

	"clinica-ginecologica/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mexicoCity(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	return loc
}

func TestAppointmentToResponseUsesClinicTime(t *testing.T) {
	loc := mexicoCity(t)
	a := &entity.Appointment{
		ID:          3,
		ScheduledAt: time.Date(2030, time.March, 11, 2, 30, 0, 0, time.UTC),
		Status:      entity.AppointmentStatusConfirmed,
	}

	resp := AppointmentToResponse(a, "Dr(a). Ana Rodríguez", loc)
	assert.Equal(t, "10/03/2030", resp.Date)
	assert.Equal(t, "20:30", resp.Time)
	assert.True(t, resp.CanCancel)

	a.Status = entity.AppointmentStatusCompleted
	assert.False(t, AppointmentToResponse(a, "", loc).CanCancel)
	assert.Nil(t, AppointmentToResponse(nil, "", loc))
}

func TestPatientToResponseCalendarDates(t *testing.T) {
	lmp := time.Date(2030, time.February, 20, 0, 0, 0, 0, time.UTC)
	p := &entity.Patient{
		FirstName:            "Lucía",
		LastName:             "Martínez",
		BirthDate:            time.Date(1990, time.May, 14, 0, 0, 0, 0, time.UTC),
		LastMenstruationDate: &lmp,
	}

	resp := PatientToResponse(p, time.Date(2026, time.May, 13, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "14/05/1990", resp.BirthDate)
	assert.Equal(t, "1990-05-14", resp.BirthDateInput)
	assert.Equal(t, 35, resp.Age)
	assert.Equal(t, "20/02/2030", resp.LastMenstruationDate)
	assert.Equal(t, "2030-02-20", resp.LastMenstruationInput)

	p.LastMenstruationDate = nil
	assert.Empty(t, PatientToResponse(p, time.Now()).LastMenstruationDate)
}

func TestHistoryEntryMeasures(t *testing.T) {
	entry := &entity.HistoryEntry{
		ConsultationDate: time.Date(2025, time.February, 3, 16, 0, 0, 0, time.UTC),
		WeightKg:         decimal.NewNullDecimal(decimal.RequireFromString("61.5")),
		TemperatureC:     decimal.NewNullDecimal(decimal.RequireFromString("36.65")),
	}

	resp := HistoryEntryToResponse(entry, "Dr(a). Ana Rodríguez", mexicoCity(t))
	assert.Equal(t, "61.50", resp.WeightKg)
	assert.Equal(t, "", resp.HeightCm)
	assert.Equal(t, "36.7", resp.TemperatureC)
	assert.Equal(t, "03/02/2025", resp.ConsultationDate)
}

func TestDoctorNames(t *testing.T) {
	names := DoctorNames([]entity.Doctor{{ID: 1, FirstName: "Ana", LastName: "Rodríguez"}})
	assert.Equal(t, map[int64]string{1: "Dr(a). Ana Rodríguez"}, names)
}
