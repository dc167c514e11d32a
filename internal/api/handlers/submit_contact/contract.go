package submit_contact

import (
	"context"

	"github.com/avergne/CFD-RdvService/internal/service/contact/models"
)

type ContactService interface {
	Submit(ctx context.Context, req *models.SubmitRequest) (*models.ContactMessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
