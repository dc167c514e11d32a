package update_status

import (
	"time"

	"github.com/avergne/CFD-RdvService/internal/domain"
	"github.com/avergne/CFD-RdvService/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // "confirmed" | "cancelled" | "completed"
}

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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		NewStatus: r.Status,
	}
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Type:            string(resp.Type),
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		AppointmentTime: resp.StartTime,
		Display:         resp.StartTimeLabel,
		DurationMinutes: resp.DurationMinutes,
		Status:          string(resp.Status),
		Name:            resp.Name,
		Email:           resp.Email,
		Phone:           resp.Phone,
		Subject:         resp.Subject,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
