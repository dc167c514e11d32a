package create_appointment

import "errors"

var (
	// ErrInvalidType возвращается при неизвестном типе рендез-вус
	ErrInvalidType = errors.New("create_appointment: invalid appointment type")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid date")

	// ErrWeekendDate возвращается, когда дата приходится на выходной
	ErrWeekendDate = errors.New("create_appointment: date falls on a weekend")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда время не принадлежит сетке слотов типа
	ErrInvalidTimeSlot = errors.New("create_appointment: time is not a valid slot for this type")

	// ErrSlotTaken возвращается, когда слот уже занят активным рендез-вус
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
