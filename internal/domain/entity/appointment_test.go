package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentCancel(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusConfirmed}
	assert.True(t, a.Cancel())
	assert.Equal(t, AppointmentStatusCancelled, a.Status)
	assert.True(t, a.IsTerminal())

	done := &Appointment{Status: AppointmentStatusCompleted}
	assert.False(t, done.Cancel())
	assert.Equal(t, AppointmentStatusCompleted, done.Status)
}

func TestAppointmentConfirmThenComplete(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusPending}
	assert.False(t, a.Complete())
	assert.True(t, a.Confirm())
	assert.True(t, a.Complete())
	assert.Equal(t, AppointmentStatusCompleted, a.Status)
}
