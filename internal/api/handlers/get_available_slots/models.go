package get_available_slots

import (
	"time"

	"github.com/avergne/CFD-RdvService/internal/domain"
	getAvailableSlots "github.com/avergne/CFD-RdvService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string `json:"date"`
	Type           string `json:"type"`
	AvailableSlots []Slot `json:"available_slots"`
}

// Slot модель слота для клиента: каноничное время для бронирования
// и локализованная подпись для отображения
type Slot struct {
	Time    string `json:"time"`
	Display string `json:"display"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:    slot.StartTime.String(),
			Display: slot.Display,
		}
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		Type:           string(resp.Type),
		AvailableSlots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(typeStr, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Type: domain.AppointmentType(typeStr),
		Date: date,
	}, nil
}
