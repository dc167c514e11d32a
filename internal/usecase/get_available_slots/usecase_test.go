package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avergne/CFD-RdvService/internal/domain"
	"github.com/avergne/CFD-RdvService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) FindBlocking(_ context.Context, _ time.Time, _ domain.AppointmentType) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testGrids(t *testing.T) map[domain.AppointmentType]domain.SlotGrid {
	t.Helper()
	formation, err := domain.NewSlotGrid(domain.TypeFormation, "09:00", "16:00", 60)
	require.NoError(t, err)
	livrables, err := domain.NewSlotGrid(domain.TypeLivrables, "09:00", "16:00", 30)
	require.NoError(t, err)
	return map[domain.AppointmentType]domain.SlotGrid{
		domain.TypeFormation: formation,
		domain.TypeLivrables: livrables,
	}
}

// 2024-06-10 - понедельник
var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo *fakeAppointmentRepo) *UseCase {
	t.Helper()
	return NewUseCase(repo, testGrids(t), &fixedTimeProvider{now: testNow}, noopLogger{})
}

func TestExecute_FullGridWhenNoBookings(t *testing.T) {
	uc := newTestUseCase(t, &fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Type: domain.TypeFormation,
		Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 7)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, "09h00", resp.Slots[0].Display)
	assert.Equal(t, types.TimeString("15:00"), resp.Slots[6].StartTime)
}

func TestExecute_ExcludesBlockedSlots(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "10:00", Status: domain.StatusPending},
			{StartTime: "13:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Type: domain.TypeFormation,
		Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 5)
	for _, slot := range resp.Slots {
		assert.NotEqual(t, types.TimeString("10:00"), slot.StartTime)
		assert.NotEqual(t, types.TimeString("13:00"), slot.StartTime)
	}
	// Хронологический порядок сохраняется
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[1].StartTime)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "10:00", Status: domain.StatusCancelled},
			{StartTime: "11:00", Status: domain.StatusCompleted},
		},
	}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Type: domain.TypeFormation,
		Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 7)
}

func TestExecute_AllSlotsTakenIsNotAnError(t *testing.T) {
	appts := make([]*domain.Appointment, 0, 7)
	for _, start := range []types.TimeString{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00"} {
		appts = append(appts, &domain.Appointment{StartTime: start, Status: domain.StatusConfirmed})
	}
	uc := newTestUseCase(t, &fakeAppointmentRepo{appointments: appts})

	resp, err := uc.Execute(context.Background(), &Request{
		Type: domain.TypeFormation,
		Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_HalfHourGrid(t *testing.T) {
	uc := newTestUseCase(t, &fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Type: domain.TypeLivrables,
		Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 14)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[1].StartTime)
	assert.Equal(t, 30, resp.Slots[0].DurationMinutes)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(t, &fakeAppointmentRepo{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "unknown type",
			req:     &Request{Type: "consultation", Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)},
			wantErr: ErrInvalidType,
		},
		{
			name:    "weekend",
			req:     &Request{Type: domain.TypeFormation, Date: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
			wantErr: ErrWeekendDate,
		},
		{
			name:    "past date",
			req:     &Request{Type: domain.TypeFormation, Date: time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "beyond booking window",
			req:     &Request{Type: domain.TypeFormation, Date: time.Date(2024, 9, 12, 0, 0, 0, 0, time.UTC)},
			wantErr: ErrDateTooFarInFuture,
		},
		{
			name:    "zero date",
			req:     &Request{Type: domain.TypeFormation},
			wantErr: ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(t, &fakeAppointmentRepo{err: errors.New("connection refused")})

	_, err := uc.Execute(context.Background(), &Request{
		Type: domain.TypeFormation,
		Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "10:00", Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(t, repo)
	req := &Request{
		Type: domain.TypeFormation,
		Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}
