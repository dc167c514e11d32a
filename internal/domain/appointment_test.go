package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentType_IsValid(t *testing.T) {
	assert.True(t, TypeFormation.IsValid())
	assert.True(t, TypeLivrables.IsValid())
	assert.False(t, AppointmentType("consultation").IsValid())
	assert.False(t, AppointmentType("").IsValid())
}

func TestAppointmentStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, AppointmentStatus("archived").IsValid())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}

func TestAppointment_IsBlocking(t *testing.T) {
	appt := &Appointment{Status: StatusPending}
	assert.True(t, appt.IsBlocking())

	appt.Status = StatusConfirmed
	assert.True(t, appt.IsBlocking())

	// Отмена и завершение освобождают слот
	appt.Status = StatusCancelled
	assert.False(t, appt.IsBlocking())

	appt.Status = StatusCompleted
	assert.False(t, appt.IsBlocking())
}

func TestAppointment_IsTerminal(t *testing.T) {
	assert.False(t, (&Appointment{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Appointment{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCancelled}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsTerminal())
}
