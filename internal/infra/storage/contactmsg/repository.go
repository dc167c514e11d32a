package contactmsg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avergne/CFD-RdvService/pkg/dbmetrics"
	"github.com/avergne/CFD-RdvService/pkg/psqlbuilder"
)

// ContactMessage сообщение из контактной формы сайта
type ContactMessage struct {
	ID      int64
	Name    string
	Email   string
	Subject *string
	Message string
	SentAt  time.Time
}

// Repository репозиторий для работы с сообщениями контактной формы
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое сообщение
func (r *Repository) Create(ctx context.Context, msg *ContactMessage) (*ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns("name", "email", "subject", "message").
		Values(msg.Name, msg.Email, msg.Subject, msg.Message).
		Suffix("RETURNING id, sent_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var sentAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &sentAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	msg.SentAt = sentAt.Time

	return msg, nil
}

// List получает все сообщения, сначала новые
func (r *Repository) List(ctx context.Context) ([]*ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "subject", "message", "sent_at").
		From("contact_messages").
		OrderBy("sent_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*ContactMessage, 0)
	for rows.Next() {
		var msg ContactMessage
		var sentAt sql.NullTime
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &sentAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		msg.SentAt = sentAt.Time
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return messages, nil
}
