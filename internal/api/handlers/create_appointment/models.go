package create_appointment

import (
	"time"

	"github.com/avergne/CFD-RdvService/internal/domain"
	createAppointment "github.com/avergne/CFD-RdvService/internal/usecase/create_appointment"
	"github.com/avergne/CFD-RdvService/pkg/types"
)

// CreateAppointmentRequest HTTP request model (форма бронирования)
type CreateAppointmentRequest struct {
	Type            string  `json:"type"`             // "formation" | "livrables"
	AppointmentDate string  `json:"appointment_date"` // "2025-10-15"
	AppointmentTime string  `json:"appointment_time"` // "10:00"
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Subject         *string `json:"subject,omitempty"`
	Notes           *string `json:"notes,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.AppointmentTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Type:      domain.AppointmentType(r.Type),
		Date:      date,
		StartTime: startTime,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Type:            string(resp.Type),
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		AppointmentTime: resp.StartTime.String(),
		Display:         resp.StartTime.Display(),
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
