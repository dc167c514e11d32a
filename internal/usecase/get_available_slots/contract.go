package get_available_slots

import (
	"context"
	"time"

	"github.com/avergne/CFD-RdvService/internal/domain"
)

// AppointmentRepository интерфейс репозитория рендез-вус
type AppointmentRepository interface {
	// FindBlocking получает рендез-вус, занимающие слоты на дату и тип
	// (статусы pending и confirmed)
	FindBlocking(ctx context.Context, date time.Time, typ domain.AppointmentType) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
// Возвращает время в таймзоне кабинета
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в таймзоне кабинета
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.Location)
}
