package contact

import (
	"context"

	"github.com/avergne/CFD-RdvService/internal/infra/storage/contactmsg"
)

// ContactMessageRepository интерфейс репозитория сообщений контактной формы
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *contactmsg.ContactMessage) (*contactmsg.ContactMessage, error)
	List(ctx context.Context) ([]*contactmsg.ContactMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
