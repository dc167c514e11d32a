package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/avergne/CFD-RdvService/internal/infra/storage/contactmsg"
	"github.com/avergne/CFD-RdvService/internal/service/contact/models"
)

// Service сервис сообщений контактной формы
type Service struct {
	msgRepo ContactMessageRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса контактов
func NewService(msgRepo ContactMessageRepository, logger Logger) *Service {
	return &Service{
		msgRepo: msgRepo,
		logger:  logger,
	}
}

// Submit сохраняет сообщение контактной формы
func (s *Service) Submit(ctx context.Context, req *models.SubmitRequest) (*models.ContactMessageResponse, error) {
	s.logger.Info("Submit: contact message from %s", req.Email)

	if err := validateSubmit(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, err
	}

	msg := &contactmsg.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: req.Subject,
		Message: strings.TrimSpace(req.Message),
	}

	created, err := s.msgRepo.Create(ctx, msg)
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: contact message id=%d saved", created.ID)
	return models.FromStorageMessage(created), nil
}

// List получает все сообщения контактной формы, сначала новые
func (s *Service) List(ctx context.Context) (*models.ContactMessageListResponse, error) {
	msgs, err := s.msgRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromStorageMessageList(msgs), nil
}

func validateSubmit(req *models.SubmitRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	return nil
}
