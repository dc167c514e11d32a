package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

const timeStringLayout = "15:04"

// TimeString время в формате "HH:MM" (24-часовой формат)
// Используется для времени начала слотов вместо time.Time,
// чтобы не тащить дату и таймзону туда, где они не нужны
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует каноничному формату "HH:MM"
// time.Parse принимает и "9:00", но ненулевой паддинг обязателен:
// сравнения IsBefore/IsAfter лексикографические
func (t TimeString) Validate() error {
	if len(t) != 5 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Equal возвращает true, если времена совпадают
func (t TimeString) Equal(other TimeString) bool {
	return string(t) == string(other)
}

// AddMinutes возвращает новый TimeString со сдвигом на minutes минут вперед
// Возвращает ошибку, если исходное значение некорректно
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// Display возвращает локализованное представление для клиента ("09h00")
func (t TimeString) Display() string {
	if len(t) != 5 {
		return string(t)
	}
	return string(t[:2]) + "h" + string(t[3:])
}
