package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avergne/CFD-RdvService/internal/domain"
	apptRepo "github.com/avergne/CFD-RdvService/internal/infra/storage/appointment"
)

// UseCase use case создания рендез-вус
type UseCase struct {
	apptRepo     AppointmentRepository
	grids        map[domain.AppointmentType]domain.SlotGrid
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	grids map[domain.AppointmentType]domain.SlotGrid,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		grids:        grids,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания рендез-вус
//
// Между запросом слотов клиентом и отправкой формы слот мог занять кто-то
// другой, поэтому доступность перепроверяется здесь же, в сериализуемой
// транзакции. Вторая линия защиты - частичный уникальный индекс в БД:
// если конкурентная вставка всё же проскочит, проигравший получает
// ErrSlotTaken, а не молча перезаписывает чужой рендез-вус
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: type=%s, date=%s, time=%s, email=%s",
		req.Type, req.Date.Format(domain.DateFormat), req.StartTime, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты относительно окна бронирования
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 3. Время должно принадлежать сетке слотов типа
	grid, ok := uc.grids[req.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}
	if !grid.Contains(req.StartTime) {
		uc.logger.Warn("CreateAppointment: time %s is not in the %s grid", req.StartTime, req.Type)
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
	}

	var result *domain.Appointment

	// 4. Перепроверка доступности и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Активные рендез-вус на эту дату и тип (с блокировкой FOR UPDATE)
		blocking, err := uc.apptRepo.FindBlocking(txCtx, req.Date, req.Type)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get blocking appointments: %v", err)
			return fmt.Errorf("%w: failed to get blocking appointments: %v", ErrInternal, err)
		}

		// 4.2. Слот свободен, если ни один активный рендез-вус не начинается
		// в это же время
		for _, appt := range blocking {
			if appt.StartTime.Equal(req.StartTime) {
				uc.logger.Warn("CreateAppointment: slot %s %s already taken by appointment id=%d",
					req.Date.Format(domain.DateFormat), req.StartTime, appt.ID)
				return ErrSlotTaken
			}
		}

		// 4.3. Создаем рендез-вус в статусе pending
		appt := &domain.Appointment{
			Type:            req.Type,
			Date:            domain.DateOnly(req.Date),
			StartTime:       req.StartTime,
			DurationMinutes: grid.DurationMinutes,
			Status:          domain.StatusPending,
			Name:            strings.TrimSpace(req.Name),
			Email:           strings.TrimSpace(req.Email),
			Phone:           req.Phone,
			Subject:         req.Subject,
			Notes:           req.Notes,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: lost booking race for slot %s %s",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d (type=%s, date=%s, time=%s)",
		result.ID, result.Type, result.Date.Format(domain.DateFormat), result.StartTime)

	return fromDomain(result), nil
}
