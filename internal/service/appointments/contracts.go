package appointments

import (
	"context"

	"github.com/avergne/CFD-RdvService/internal/domain"
)

// AppointmentRepository интерфейс репозитория рендез-вус
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
