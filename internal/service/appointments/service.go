package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/avergne/CFD-RdvService/internal/infra/storage/appointment"
	"github.com/avergne/CFD-RdvService/internal/service/appointments/models"
)

// Service сервис сотрудника: жизненный цикл рендез-вус и дашборд
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса рендез-вус
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// GetByID получает рендез-вус по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает рендез-вус для дашборда с фильтрацией по типу и статусу
// Отсутствующий фильтр пропускает все значения; порядок - порядок
// репозитория (по дате и времени)
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, type=%v, status=%v", req.Type, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appts, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// UpdateStatus переводит рендез-вус в новый статус по таблице переходов:
// pending -> confirmed | cancelled, confirmed -> cancelled | completed;
// cancelled и completed терминальны
//
// Переход применяется атомарно (optimistic update по текущему статусу).
// Отмена немедленно освобождает слот: занятость считается по статусам
// pending/confirmed, отдельного шага очистки нет
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d -> %s", id, req.NewStatus)

	newStatus, err := models.ToDomainStatus(req.NewStatus)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for appointment id=%d", req.NewStatus, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !appt.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for appointment id=%d",
			appt.Status, newStatus, id)
		return nil, fmt.Errorf("%w: cannot change status from %s to %s",
			ErrInvalidTransition, appt.Status, newStatus)
	}

	if err := s.apptRepo.UpdateStatus(ctx, id, appt.Status, newStatus); err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, apptRepo.ErrStatusConflict):
			// Конкурентное действие сотрудника успело изменить статус:
			// перечитываем и отклоняем переход из актуального статуса
			current, getErr := s.apptRepo.GetByID(ctx, id)
			if getErr != nil {
				s.logger.Error("UpdateStatus: re-read after conflict failed for id=%d: %v", id, getErr)
				return nil, fmt.Errorf("%w: UpdateStatus - re-read after conflict: %v", ErrInternal, getErr)
			}
			s.logger.Warn("UpdateStatus: lost transition race for appointment id=%d, current status=%s",
				id, current.Status)
			return nil, fmt.Errorf("%w: cannot change status from %s to %s",
				ErrInvalidTransition, current.Status, newStatus)
		default:
			s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to re-read appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - re-read error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", id, updated.Status)
	return models.FromDomainAppointment(updated), nil
}
