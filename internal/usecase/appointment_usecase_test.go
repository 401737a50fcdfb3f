package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppointmentAddsReminderADayBefore(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")
	doctor := testutil.CreateDoctor(t, f.db, "Ana Patricia", "Rodríguez Sánchez")
	date := f.futureDate(3)

	appointment := f.book(t, patient.ID, doctor.ID, date, "16:30")

	assert.Equal(t, string(entity.AppointmentStatusPending), appointment.Status)
	assert.Equal(t, "16:30", appointment.Time)
	assert.Equal(t, "Dr(a). Ana Patricia Rodríguez Sánchez", appointment.DoctorName)
	assert.True(t, appointment.CanCancel)

	var stored entity.Appointment
	require.NoError(t, f.db.First(&stored, appointment.ID).Error)

	var reminders []entity.Reminder
	require.NoError(t, f.db.Where("patient_id = ?", patient.ID).Find(&reminders).Error)
	require.Len(t, reminders, 1)
	reminder := reminders[0]
	assert.Equal(t, entity.ReminderTypeAppointment, reminder.Type)
	assert.Equal(t, "Recordatorio: Cita de Consulta General", reminder.Title)
	assert.Equal(t, "Tienes una cita mañana a las 16:30", reminder.Description)
	assert.Equal(t, entity.ReminderStatusActive, reminder.Status)
	assert.True(t, reminder.RemindAt.Equal(stored.ScheduledAt.Add(-24*time.Hour)))
}

func TestCreateAppointmentRejectsPastSchedule(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")
	doctor := testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")

	_, err := f.appointments.CreateAppointment(context.Background(), patient.ID, &dto.CreateAppointmentRequest{
		DoctorID:         doctor.ID,
		Date:             f.futureDate(-1),
		Time:             "10:00",
		ConsultationType: "Consulta General",
	})
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	var count int64
	require.NoError(t, f.db.Model(&entity.Appointment{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, f.db.Model(&entity.Reminder{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateAppointmentRejectsUnknownOrInactiveDoctor(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")
	doctor := testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")
	require.NoError(t, f.db.Model(&entity.Doctor{}).Where("id = ?", doctor.ID).Update("is_active", false).Error)

	for _, id := range []int64{doctor.ID, 9999} {
		_, err := f.appointments.CreateAppointment(context.Background(), patient.ID, &dto.CreateAppointmentRequest{
			DoctorID: id, Date: f.futureDate(2), Time: "10:00", ConsultationType: "Consulta General",
		})
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	}
}

func TestCreateAppointmentRejectsHeldSlot(t *testing.T) {
	f := newFixture(t)
	lucia := f.register(t, "lucia@example.com", "MALU900514")
	maria := f.register(t, "maria@example.com", "MARI880101")
	doctor := testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")
	date := f.futureDate(4)

	first := f.book(t, lucia.ID, doctor.ID, date, "10:00")

	_, err := f.appointments.CreateAppointment(context.Background(), maria.ID, &dto.CreateAppointmentRequest{
		DoctorID: doctor.ID, Date: date, Time: "10:00", ConsultationType: "Papanicolau",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// A cancelled appointment frees the slot
	require.NoError(t, f.appointments.CancelAppointment(context.Background(), lucia.ID, first.ID))
	f.book(t, maria.ID, doctor.ID, date, "10:00")
}

func TestCreateAppointmentRejectsLockedSlot(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")
	doctor := testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")
	date := f.futureDate(4)

	at, err := parseLocalDateTime(date, "11:30", f.loc)
	require.NoError(t, err)
	require.NoError(t, f.redis.Set(fmt.Sprintf("slot:lock:%d:%d", doctor.ID, at.Unix()), "another-request"))

	_, err = f.appointments.CreateAppointment(context.Background(), patient.ID, &dto.CreateAppointmentRequest{
		DoctorID: doctor.ID, Date: date, Time: "11:30", ConsultationType: "Consulta General",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCancelAppointmentRules(t *testing.T) {
	f := newFixture(t)
	owner := f.register(t, "lucia@example.com", "MALU900514")
	stranger := f.register(t, "maria@example.com", "MARI880101")
	doctor := testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")
	ctx := context.Background()

	pending := f.book(t, owner.ID, doctor.ID, f.futureDate(5), "09:00")
	confirmed := f.book(t, owner.ID, doctor.ID, f.futureDate(5), "09:30")
	completed := f.book(t, owner.ID, doctor.ID, f.futureDate(5), "10:00")
	f.setAppointmentStatus(t, confirmed.ID, entity.AppointmentStatusConfirmed)
	f.setAppointmentStatus(t, completed.ID, entity.AppointmentStatusCompleted)

	assert.ErrorIs(t, f.appointments.CancelAppointment(ctx, stranger.ID, pending.ID), ErrForbidden)
	assert.ErrorIs(t, f.appointments.CancelAppointment(ctx, owner.ID, 9999), ErrAppointmentNotFound)
	assert.ErrorIs(t, f.appointments.CancelAppointment(ctx, owner.ID, completed.ID), ErrInvalidState)

	require.NoError(t, f.appointments.CancelAppointment(ctx, owner.ID, pending.ID))
	require.NoError(t, f.appointments.CancelAppointment(ctx, owner.ID, confirmed.ID))
	assert.ErrorIs(t, f.appointments.CancelAppointment(ctx, owner.ID, pending.ID), ErrInvalidState)

	var stored entity.Appointment
	require.NoError(t, f.db.First(&stored, pending.ID).Error)
	assert.Equal(t, entity.AppointmentStatusCancelled, stored.Status)
	var completedRow entity.Appointment
	require.NoError(t, f.db.First(&completedRow, completed.ID).Error)
	assert.Equal(t, entity.AppointmentStatusCompleted, completedRow.Status)

	var audits int64
	require.NoError(t, f.db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionAppointmentCancel).Count(&audits).Error)
	assert.Equal(t, int64(2), audits)
}

func TestGetAvailableSlots(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")
	doctor := testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")
	other := testutil.CreateDoctor(t, f.db, "María", "García")
	date := f.futureDate(6)
	ctx := context.Background()

	free, err := f.appointments.GetAvailableSlots(ctx, doctor.ID, date)
	require.NoError(t, err)
	require.Len(t, free.Slots, 20)
	assert.Equal(t, "08:00", free.Slots[0])
	assert.Equal(t, "17:30", free.Slots[19])

	f.book(t, patient.ID, doctor.ID, date, "10:00")
	cancelled := f.book(t, patient.ID, doctor.ID, date, "12:00")
	require.NoError(t, f.appointments.CancelAppointment(ctx, patient.ID, cancelled.ID))
	f.book(t, patient.ID, other.ID, date, "15:00")

	free, err = f.appointments.GetAvailableSlots(ctx, doctor.ID, date)
	require.NoError(t, err)
	assert.Len(t, free.Slots, 19)
	assert.NotContains(t, free.Slots, "10:00")
	assert.Contains(t, free.Slots, "12:00")
	assert.Contains(t, free.Slots, "15:00")
	assert.Equal(t, []string{"08:00", "08:30", "09:00", "09:30", "10:30"}, free.Slots[:5])
}

func TestGetAvailableSlotsParameters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.appointments.GetAvailableSlots(ctx, 0, "2030-03-10")
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = f.appointments.GetAvailableSlots(ctx, 1, "")
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = f.appointments.GetAvailableSlots(ctx, 1, "10-03-2030")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestListAppointmentsFilters(t *testing.T) {
	f := newFixture(t)
	patient := f.register(t, "lucia@example.com", "MALU900514")
	doctor := testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")
	ctx := context.Background()

	later := f.book(t, patient.ID, doctor.ID, f.futureDate(10), "10:00")
	sooner := f.book(t, patient.ID, doctor.ID, f.futureDate(2), "10:00")
	past := &entity.Appointment{
		PatientID:        patient.ID,
		DoctorID:         doctor.ID,
		ScheduledAt:      time.Now().Add(-72 * time.Hour).Truncate(time.Minute).UTC(),
		ConsultationType: "Papanicolau",
		Status:           entity.AppointmentStatusCompleted,
	}
	require.NoError(t, f.db.Create(past).Error)

	upcoming, err := f.appointments.ListAppointments(ctx, patient.ID, entity.AppointmentFilterUpcoming)
	require.NoError(t, err)
	require.Equal(t, 2, upcoming.Total)
	assert.Equal(t, sooner.ID, upcoming.Appointments[0].ID)
	assert.Equal(t, later.ID, upcoming.Appointments[1].ID)
	assert.Equal(t, "Dr(a). Ana Rodríguez", upcoming.Appointments[0].DoctorName)

	pastList, err := f.appointments.ListAppointments(ctx, patient.ID, entity.AppointmentFilterPast)
	require.NoError(t, err)
	require.Equal(t, 1, pastList.Total)
	assert.Equal(t, past.ID, pastList.Appointments[0].ID)
	assert.False(t, pastList.Appointments[0].CanCancel)

	all, err := f.appointments.ListAppointments(ctx, patient.ID, entity.AppointmentFilterAll)
	require.NoError(t, err)
	require.Equal(t, 3, all.Total)
	assert.Equal(t, later.ID, all.Appointments[0].ID)
}

func TestGetAppointmentDetail(t *testing.T) {
	f := newFixture(t)
	owner := f.register(t, "lucia@example.com", "MALU900514")
	stranger := f.register(t, "maria@example.com", "MARI880101")
	doctor := testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")
	ctx := context.Background()

	appointment := f.book(t, owner.ID, doctor.ID, f.futureDate(3), "13:00")
	require.NoError(t, f.db.Create(&entity.HistoryEntry{
		PatientID:        owner.ID,
		DoctorID:         doctor.ID,
		AppointmentID:    &appointment.ID,
		ConsultationDate: time.Now().UTC(),
		Diagnosis:        "Sin hallazgos",
	}).Error)

	detail, err := f.appointments.GetAppointment(ctx, owner.ID, appointment.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Doctor)
	assert.Equal(t, doctor.ID, detail.Doctor.ID)
	require.NotNil(t, detail.History)
	assert.Equal(t, "Sin hallazgos", detail.History.Diagnosis)

	_, err = f.appointments.GetAppointment(ctx, stranger.ID, appointment.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.appointments.GetAppointment(ctx, owner.ID, 9999)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetBookingOptions(t *testing.T) {
	f := newFixture(t)
	testutil.CreateDoctor(t, f.db, "Ana", "Rodríguez")
	require.NoError(t, f.db.Create(&entity.ConsultationType{Name: "Papanicolau", DurationMinutes: 30, IsActive: true}).Error)

	options, err := f.appointments.GetBookingOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, options.Doctors, 1)
	assert.Len(t, options.ConsultationTypes, 1)
	assert.Equal(t, time.Now().In(f.loc).Format("2006-01-02"), options.MinDate)
}

func TestDaySlots(t *testing.T) {
	loc := testutil.Location(t)
	slots := daySlots(time.Date(2030, time.March, 10, 0, 0, 0, 0, loc))

	require.Len(t, slots, 20)
	assert.Equal(t, time.Date(2030, time.March, 10, 8, 0, 0, 0, loc), slots[0])
	assert.Equal(t, time.Date(2030, time.March, 10, 17, 30, 0, 0, loc), slots[19])
}
