package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avergne/CFD-RdvService/internal/domain"
	apptRepo "github.com/avergne/CFD-RdvService/internal/infra/storage/appointment"
	"github.com/avergne/CFD-RdvService/internal/service/appointments/models"
	"github.com/avergne/CFD-RdvService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	listResult   []*domain.Appointment
	listErr      error
	updateErr    error
	updateCalls  int
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ domain.AppointmentFilter) ([]*domain.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, from, to domain.AppointmentStatus) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	appt, ok := f.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	if appt.Status != from {
		return apptRepo.ErrStatusConflict
	}
	appt.Status = to
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func pendingAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		Type:            domain.TypeFormation,
		Date:            time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusPending,
		Name:            "Jean Dupont",
		Email:           "jean.dupont@example.fr",
	}
}

func newTestService(repo *fakeAppointmentRepo) *Service {
	return NewService(repo, noopLogger{})
}

func TestGetByID(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: map[int64]*domain.Appointment{1: pendingAppointment(1)},
	}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10h00", resp.StartTimeLabel)

	_, err = svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList(t *testing.T) {
	repo := &fakeAppointmentRepo{
		listResult: []*domain.Appointment{pendingAppointment(1), pendingAppointment(2)},
	}
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Appointments, 2)
}

func TestList_InvalidFilter(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{})

	_, err := svc.List(context.Background(), &models.ListRequest{Type: ptr.Ptr("consultation")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RepositoryError(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{listErr: errors.New("connection refused")})

	_, err := svc.List(context.Background(), &models.ListRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdateStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.AppointmentStatus
		to   string
	}{
		{"pending to confirmed", domain.StatusPending, "confirmed"},
		{"pending to cancelled", domain.StatusPending, "cancelled"},
		{"confirmed to cancelled", domain.StatusConfirmed, "cancelled"},
		{"confirmed to completed", domain.StatusConfirmed, "completed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := pendingAppointment(1)
			appt.Status = tt.from
			repo := &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{1: appt}}
			svc := newTestService(repo)

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{NewStatus: tt.to})
			require.NoError(t, err)
			assert.Equal(t, domain.AppointmentStatus(tt.to), resp.Status)
		})
	}
}

func TestUpdateStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.AppointmentStatus
		to   string
	}{
		{"pending to completed", domain.StatusPending, "completed"},
		{"confirmed to pending", domain.StatusConfirmed, "pending"},
		{"cancelled is terminal", domain.StatusCancelled, "confirmed"},
		{"completed is terminal", domain.StatusCompleted, "cancelled"},
		{"same status", domain.StatusPending, "pending"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := pendingAppointment(1)
			appt.Status = tt.from
			repo := &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{1: appt}}
			svc := newTestService(repo)

			_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{NewStatus: tt.to})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, 0, repo.updateCalls)
		})
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: map[int64]*domain.Appointment{1: pendingAppointment(1)},
	}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{NewStatus: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{}})

	_, err := svc.UpdateStatus(context.Background(), 999, &models.UpdateStatusRequest{NewStatus: "confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_LostRace(t *testing.T) {
	// Второй сотрудник успел отменить рендез-вус между чтением и записью:
	// optimistic update по исходному статусу не находит строку
	appt := pendingAppointment(1)
	repo := &fakeAppointmentRepo{
		appointments: map[int64]*domain.Appointment{1: appt},
		updateErr:    apptRepo.ErrStatusConflict,
	}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{NewStatus: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_CancellationFreesSlot(t *testing.T) {
	appt := pendingAppointment(1)
	repo := &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{1: appt}}
	svc := newTestService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{NewStatus: "cancelled"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, resp.Status)
	assert.False(t, appt.IsBlocking())
}
