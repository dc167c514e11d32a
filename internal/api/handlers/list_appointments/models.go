package list_appointments

import (
	"time"

	"github.com/avergne/CFD-RdvService/internal/domain"
	"github.com/avergne/CFD-RdvService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	Type            string  `json:"type"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	Display         string  `json:"display"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Subject         *string `json:"subject,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// AppointmentListResponse HTTP response model списка рендез-вус
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// ToServiceRequest создает запрос сервиса из query параметров
// Пустые параметры означают "без фильтра"
func ToServiceRequest(typeStr, statusStr string) *models.ListRequest {
	req := &models.ListRequest{}
	if typeStr != "" {
		req.Type = &typeStr
	}
	if statusStr != "" {
		req.Status = &statusStr
	}
	return req
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	appts := make([]*AppointmentResponse, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		appts[i] = &AppointmentResponse{
			ID:              appt.ID,
			Type:            string(appt.Type),
			AppointmentDate: appt.Date.Format(domain.DateFormat),
			AppointmentTime: appt.StartTime,
			Display:         appt.StartTimeLabel,
			DurationMinutes: appt.DurationMinutes,
			Status:          string(appt.Status),
			Name:            appt.Name,
			Email:           appt.Email,
			Phone:           appt.Phone,
			Subject:         appt.Subject,
			Notes:           appt.Notes,
			CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &AppointmentListResponse{
		Appointments: appts,
		Total:        resp.Total,
	}
}
