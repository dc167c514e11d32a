package create_appointment

import (
	"fmt"
	"strings"
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

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if req.Phone != nil && len(*req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}
	if req.Subject != nil && len(*req.Subject) > domain.MaxSubjectLength {
		return fmt.Errorf("%w: subject exceeds %d characters", ErrInvalidInput, domain.MaxSubjectLength)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
// Та же календарная арифметика, что и при выдаче слотов - обе проверки
// ходят в domain, чтобы правила не разъезжались
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
