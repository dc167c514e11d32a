package get_available_slots

import (
	"github.com/avergne/CFD-RdvService/internal/domain"
	"github.com/avergne/CFD-RdvService/pkg/types"
)

// availableSlots возвращает слоты сетки, не занятые активными рендез-вус,
// в порядке сетки (хронологическом)
//
// Слоты - дискретные единицы: рендез-вус занимает слот только при точном
// совпадении времени начала, математика пересечений интервалов не нужна
func availableSlots(grid domain.SlotGrid, blocking []*domain.Appointment) []domain.Slot {
	taken := make(map[types.TimeString]struct{}, len(blocking))
	for _, appt := range blocking {
		// Защитная проверка: репозиторий и так отдаёт только pending/confirmed
		if !appt.IsBlocking() {
			continue
		}
		taken[appt.StartTime] = struct{}{}
	}

	slots := make([]domain.Slot, 0, len(grid.Times))
	for _, start := range grid.Times {
		if _, ok := taken[start]; ok {
			continue
		}
		slots = append(slots, domain.NewSlot(start, grid.DurationMinutes))
	}

	return slots
}
