package usecase

import (
	"context"
	"testing"
	"time"

	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryListAndDetail(t *testing.T) {
	f := newFixture(t)
	owner := f.register(t, "lucia@example.com", "MALU900514")
	stranger := f.register(t, "maria@example.com", "MARI880101")
	doctor := testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")
	ctx := context.Background()

	older := &entity.HistoryEntry{
		PatientID:        owner.ID,
		DoctorID:         doctor.ID,
		ConsultationDate: time.Date(2024, time.June, 1, 16, 0, 0, 0, time.UTC),
		ConsultationType: "Papanicolau",
		Diagnosis:        "Citología normal",
	}
	newer := &entity.HistoryEntry{
		PatientID:        owner.ID,
		DoctorID:         doctor.ID,
		ConsultationDate: time.Date(2025, time.February, 3, 16, 0, 0, 0, time.UTC),
		ConsultationType: "Control Prenatal",
		WeightKg:         decimal.NewNullDecimal(decimal.RequireFromString("61.5")),
		TemperatureC:     decimal.NewNullDecimal(decimal.RequireFromString("36.6")),
	}
	require.NoError(t, f.db.Create(older).Error)
	require.NoError(t, f.db.Create(newer).Error)

	list, err := f.history.ListHistory(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, newer.ID, list.Entries[0].ID)
	assert.Equal(t, "Dr(a). Ana Rodríguez", list.Entries[0].DoctorName)

	detail, err := f.history.GetHistoryEntry(ctx, owner.ID, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Control Prenatal", detail.ConsultationType)
	assert.NotEmpty(t, detail.WeightKg)

	_, err = f.history.GetHistoryEntry(ctx, stranger.ID, older.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.history.GetHistoryEntry(ctx, owner.ID, 9999)
	assert.ErrorIs(t, err, ErrHistoryEntryNotFound)

	empty, err := f.history.ListHistory(ctx, stranger.ID)
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
}
