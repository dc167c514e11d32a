package models

import (
	"fmt"
	"time"

	"github.com/avergne/CFD-RdvService/internal/domain"
)

// AppointmentResponse модель рендез-вус для слоя сервиса
type AppointmentResponse struct {
	ID              int64
	Type            domain.AppointmentType
	Date            time.Time
	StartTime       string
	StartTimeLabel  string
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

// AppointmentListResponse список рендез-вус
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
	Total        int
}

// ListRequest запрос списка рендез-вус для дашборда
// nil-поля означают "без фильтра"
type ListRequest struct {
	Type   *string
	Status *string
}

// UpdateStatusRequest запрос на смену статуса рендез-вус
type UpdateStatusRequest struct {
	NewStatus string
}

// ToDomainFilter конвертирует запрос списка в доменный фильтр
func (r *ListRequest) ToDomainFilter() (domain.AppointmentFilter, error) {
	var filter domain.AppointmentFilter

	if r.Type != nil {
		typ := domain.AppointmentType(*r.Type)
		if !typ.IsValid() {
			return filter, fmt.Errorf("unknown appointment type: %q", *r.Type)
		}
		filter.Type = &typ
	}

	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("unknown appointment status: %q", *r.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainStatus конвертирует строку в доменный статус
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown appointment status: %q", s)
	}
	return status, nil
}

// FromDomainAppointment конвертирует доменную модель в модель сервиса
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID,
		Type:            appt.Type,
		Date:            appt.Date,
		StartTime:       appt.StartTime.String(),
		StartTimeLabel:  appt.StartTime.Display(),
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

// FromDomainAppointmentList конвертирует список доменных моделей
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	responses := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		responses[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
