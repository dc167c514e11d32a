package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда рендез-вус не найден
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition возвращается при недопустимом переходе статусов
	// (в том числе из терминальных статусов cancelled и completed)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
