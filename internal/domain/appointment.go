package domain

import (
	"time"

	"github.com/avergne/CFD-RdvService/pkg/types"
)

// AppointmentType represents the kind of rendez-vous being booked
type AppointmentType string

const (
	TypeFormation AppointmentType = "formation"
	TypeLivrables AppointmentType = "livrables"
)

// IsValid returns true if the type is one of the known appointment types
func (t AppointmentType) IsValid() bool {
	return t == TypeFormation || t == TypeLivrables
}

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid returns true if the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// allowedTransitions таблица переходов статусов
// pending -> confirmed | cancelled (действие сотрудника)
// confirmed -> cancelled | completed (действие сотрудника)
// cancelled и completed - терминальные статусы
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// CanTransition returns true if the status change from -> to is allowed
func CanTransition(from, to AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Appointment represents a rendez-vous booking for a formation or livrables session
type Appointment struct {
	ID              int64
	Type            AppointmentType
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Contact details supplied on the booking form
	Name    string
	Email   string
	Phone   *string
	Subject *string
	Notes   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the appointment occupies its slot
// (cancelled and completed appointments free the slot)
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transition is permitted
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// CanTransitionTo returns true if the appointment may move to the given status
func (a *Appointment) CanTransitionTo(to AppointmentStatus) bool {
	return CanTransition(a.Status, to)
}

// BlockingStatuses статусы, при которых рендез-вус занимает свой слот
// Используется при подсчёте доступных слотов и в частичном уникальном индексе
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses терминальные статусы
var TerminalStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusCompleted,
}

// AppointmentFilter фильтр для списка рендез-вус (дашборд сотрудника)
// nil-поля означают "без фильтра"
type AppointmentFilter struct {
	Type   *AppointmentType
	Status *AppointmentStatus
}
