package get_available_slots

import "errors"

var (
	// ErrInvalidType возвращается при неизвестном типе рендез-вус
	ErrInvalidType = errors.New("get_available_slots: invalid appointment type")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrWeekendDate возвращается, когда дата приходится на выходной
	ErrWeekendDate = errors.New("get_available_slots: date falls on a weekend")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
