package usecase

import (
	"context"
	"testing"
	"time"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReport(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")
	doctor := testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")
	ctx := context.Background()

	f.book(t, patient.ID, doctor.ID, f.futureDate(2), "09:00")
	f.book(t, patient.ID, doctor.ID, f.futureDate(2), "09:30")
	cancelled := f.book(t, patient.ID, doctor.ID, f.futureDate(3), "09:00")
	require.NoError(t, f.appointments.CancelAppointment(ctx, patient.ID, cancelled.ID))

	for _, d := range []time.Time{
		time.Date(2023, time.March, 1, 16, 0, 0, 0, time.UTC),
		time.Date(2024, time.May, 1, 16, 0, 0, 0, time.UTC),
		time.Date(2024, time.July, 1, 16, 0, 0, 0, time.UTC),
	} {
		require.NoError(t, f.db.Create(&entity.HistoryEntry{PatientID: patient.ID, DoctorID: doctor.ID, ConsultationDate: d}).Error)
	}

	report, err := f.reports.GetReport(ctx, patient.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalAppointments)
	assert.Equal(t, []dto.CountResponse{
		{Label: "pending", Total: 2},
		{Label: "confirmed", Total: 0},
		{Label: "completed", Total: 0},
		{Label: "cancelled", Total: 1},
	}, report.ByStatus)
	assert.Equal(t, []dto.CountResponse{{Label: "Consulta General", Total: 3}}, report.ByConsultationType)
	assert.Equal(t, []dto.CountResponse{
		{Label: "2023", Total: 1},
		{Label: "2024", Total: 2},
	}, report.HistoryEntriesPerYear)
}

func TestGetReportEmpty(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")

	report, err := f.reports.GetReport(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Zero(t, report.TotalAppointments)
	assert.Len(t, report.ByStatus, 4)
	assert.Empty(t, report.ByConsultationType)
	assert.Empty(t, report.HistoryEntriesPerYear)
}

func TestCountsPerYearUsesClinicLocation(t *testing.T) {
	loc := testutil.Location(t)
	// 03:00 UTC on Jan 1st is still Dec 31st in Mexico City
	counts := countsPerYear([]time.Time{time.Date(2025, time.January, 1, 3, 0, 0, 0, time.UTC)}, loc)
	assert.Equal(t, []dto.CountResponse{{Label: "2024", Total: 1}}, counts)
}
