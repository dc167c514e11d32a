package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда рендез-вус не найден
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается, когда слот (type, date, time) уже занят
	// активным рендез-вус - нарушение частичного уникального индекса
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrStatusConflict возвращается, когда optimistic update статуса не прошёл:
	// статус изменился между чтением и записью
	ErrStatusConflict = errors.New("appointment.repository: status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
