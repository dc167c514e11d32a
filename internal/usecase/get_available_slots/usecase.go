package get_available_slots

import (
	"context"
	"fmt"

	"github.com/avergne/CFD-RdvService/internal/domain"
)

// UseCase use case получения доступных слотов на дату и тип рендез-вус
type UseCase struct {
	apptRepo     AppointmentRepository
	grids        map[domain.AppointmentType]domain.SlotGrid
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	grids map[domain.AppointmentType]domain.SlotGrid,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		grids:        grids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Пустой список слотов - нормальный результат ("нет свободных мест"),
// а не ошибка. Доступность всегда пересчитывается из текущего состояния
// хранилища, ничего не кэшируется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: type=%s, date=%s", req.Type, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты относительно окна бронирования
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Сетка слотов для типа
	grid, ok := uc.grids[req.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}

	// 4. Активные рендез-вус на эту дату и тип
	blocking, err := uc.apptRepo.FindBlocking(ctx, req.Date, req.Type)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocking appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocking appointments: %v", ErrInternal, err)
	}

	// 5. Сетка минус занятые слоты
	slots := availableSlots(grid, blocking)

	uc.logger.Info("GetAvailableSlots: %d/%d slots available for type=%s, date=%s",
		len(slots), len(grid.Times), req.Type, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Type:  req.Type,
		Slots: slots,
	}, nil
}
