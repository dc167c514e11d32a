package list_contact_messages

import (
	"time"

	"github.com/avergne/CFD-RdvService/internal/service/contact/models"
)

// ContactMessageResponse HTTP response model
type ContactMessageResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
	SentAt  string  `json:"sent_at"`
}

// ContactMessageListResponse HTTP response model списка сообщений
type ContactMessageListResponse struct {
	Messages []*ContactMessageResponse `json:"messages"`
	Total    int                       `json:"total"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.ContactMessageListResponse) *ContactMessageListResponse {
	msgs := make([]*ContactMessageResponse, len(resp.Messages))
	for i, msg := range resp.Messages {
		msgs[i] = &ContactMessageResponse{
			ID:      msg.ID,
			Name:    msg.Name,
			Email:   msg.Email,
			Subject: msg.Subject,
			Message: msg.Message,
			SentAt:  msg.SentAt.Format(time.RFC3339),
		}
	}

	return &ContactMessageListResponse{
		Messages: msgs,
		Total:    resp.Total,
	}
}
