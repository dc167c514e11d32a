package models

import (
	"time"

	"github.com/avergne/CFD-RdvService/internal/infra/storage/contactmsg"
)

// SubmitRequest запрос отправки сообщения контактной формы
type SubmitRequest struct {
	Name    string
	Email   string
	Subject *string
	Message string
}

// ContactMessageResponse модель сообщения для слоя сервиса
type ContactMessageResponse struct {
	ID      int64
	Name    string
	Email   string
	Subject *string
	Message string
	SentAt  time.Time
}

// ContactMessageListResponse список сообщений
type ContactMessageListResponse struct {
	Messages []*ContactMessageResponse
	Total    int
}

// FromStorageMessage конвертирует модель хранилища в модель сервиса
func FromStorageMessage(msg *contactmsg.ContactMessage) *ContactMessageResponse {
	return &ContactMessageResponse{
		ID:      msg.ID,
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
		SentAt:  msg.SentAt,
	}
}

// FromStorageMessageList конвертирует список моделей хранилища
func FromStorageMessageList(msgs []*contactmsg.ContactMessage) *ContactMessageListResponse {
	responses := make([]*ContactMessageResponse, len(msgs))
	for i, msg := range msgs {
		responses[i] = FromStorageMessage(msg)
	}
	return &ContactMessageListResponse{
		Messages: responses,
		Total:    len(responses),
	}
}
