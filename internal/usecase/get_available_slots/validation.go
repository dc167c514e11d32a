package get_available_slots

import (
	"fmt"
	"time"

	"github.com/avergne/CFD-RdvService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования:
// будний день, не в прошлом, не дальше трёх календарных месяцев от сегодня
func validateDate(date, now time.Time) error {
	if domain.IsWeekend(date) {
		return ErrWeekendDate
	}
	if domain.IsPastDate(date, now) {
		return ErrInvalidDate
	}
	if domain.IsAfterWindow(date, now) {
		return fmt.Errorf("%w: can only book until %s", ErrDateTooFarInFuture,
			domain.MaxBookableDate(now).Format(domain.DateFormat))
	}
	return nil
}
