package repository

import (
	"testing"

	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRepositoryFindActive(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewDoctorRepository()
	garcia := testutil.CreateDoctor(t, db, "María Elena", "García López")
	retired := testutil.CreateDoctor(t, db, "Julia", "Alvarado")
	// default:true on is_active means inactive rows are written by update
	require.NoError(t, db.Model(&entity.Doctor{}).Where("id = ?", retired.ID).Update("is_active", false).Error)

	active, err := repo.FindActive(db)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, garcia.ID, active[0].ID)

	byIDs, err := repo.FindByIDs(db, []int64{garcia.ID, retired.ID})
	require.NoError(t, err)
	assert.Len(t, byIDs, 2)

	none, err := repo.FindByIDs(db, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	count, err := repo.Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestConsultationTypeRepositoryFindActive(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewConsultationTypeRepository()

	require.NoError(t, repo.Create(db, &entity.ConsultationType{Name: "Papanicolau", DurationMinutes: 30, IsActive: true}))
	require.NoError(t, repo.Create(db, &entity.ConsultationType{Name: "Control Prenatal", DurationMinutes: 45, IsActive: true}))

	types, err := repo.FindActive(db)
	require.NoError(t, err)
	assert.Len(t, types, 2)

	count, err := repo.Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestAuditLogRepositoryNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAuditLogRepository()
	patient := testutil.CreatePatient(t, db, "lucia@example.com", "MALU900514")

	for _, action := range []string{entity.AuditActionPatientRegister, entity.AuditActionPatientLogin, entity.AuditActionAppointmentCreate} {
		require.NoError(t, repo.Create(db, &entity.AuditLog{PatientID: &patient.ID, Action: action, Metadata: entity.JSON{"k": "v"}}))
	}

	logs, err := repo.FindByPatient(db, patient.ID, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.AuditActionAppointmentCreate, logs[0].Action)
	assert.Equal(t, "v", logs[0].Metadata["k"])
}
