package get_available_slots

import (
	"time"

	"github.com/avergne/CFD-RdvService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Type domain.AppointmentType // Тип рендез-вус (formation или livrables)
	Date time.Time              // Дата, на которую запрашиваются слоты
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time              // Дата, на которую запрашивались слоты
	Type  domain.AppointmentType // Тип рендез-вус
	Slots []domain.Slot          // Доступные слоты в хронологическом порядке
}
