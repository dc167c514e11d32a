package submit_contact

import (
	"time"

	"github.com/avergne/CFD-RdvService/internal/service/contact/models"
)

// SubmitContactRequest HTTP request model (контактная форма)
type SubmitContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}

// ContactMessageResponse HTTP response model
type ContactMessageResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
	SentAt  string  `json:"sent_at"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SubmitContactRequest) ToServiceRequest() *models.SubmitRequest {
	return &models.SubmitRequest{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.ContactMessageResponse) *ContactMessageResponse {
	return &ContactMessageResponse{
		ID:      resp.ID,
		Name:    resp.Name,
		Email:   resp.Email,
		Subject: resp.Subject,
		Message: resp.Message,
		SentAt:  resp.SentAt.Format(time.RFC3339),
	}
}
