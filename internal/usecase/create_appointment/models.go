package create_appointment

import (
	"time"

	"github.com/avergne/CFD-RdvService/internal/domain"
	"github.com/avergne/CFD-RdvService/pkg/types"
)

// Request модель запроса на создание рендез-вус
type Request struct {
	Type      domain.AppointmentType // Тип рендез-вус
	Date      time.Time              // Дата рендез-вус (без времени)
	StartTime types.TimeString       // Время начала слота (например, "10:00")

	// Контактные данные из формы бронирования
	Name    string
	Email   string
	Phone   *string
	Subject *string
	Notes   *string
}

// Response модель ответа с созданным рендез-вус
type Response struct {
	ID              int64
	Type            domain.AppointmentType
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          domain.AppointmentStatus

	Name    string
	Email   string
	Phone   *string
	Subject *string
	Notes   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует доменную модель в ответ use case
func fromDomain(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		Type:            appt.Type,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          appt.Status,
		Name:            appt.Name,
		Email:           appt.Email,
		Phone:           appt.Phone,
		Subject:         appt.Subject,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
