package domain

import (
	"fmt"

	"github.com/avergne/CFD-RdvService/pkg/types"
)

// SlotGrid фиксированная упорядоченная сетка слотов одного типа рендез-вус.
// Слоты - дискретные, непересекающиеся единицы: один рендез-вус на слот
type SlotGrid struct {
	Type            AppointmentType
	Times           []types.TimeString
	DurationMinutes int
}

// NewSlotGrid строит сетку слотов от start до end (не включая end)
// с шагом durationMinutes. Последний слот должен целиком помещаться до end
func NewSlotGrid(typ AppointmentType, start, end string, durationMinutes int) (SlotGrid, error) {
	if durationMinutes <= 0 {
		return SlotGrid{}, fmt.Errorf("slot grid %s: duration must be positive, got %d", typ, durationMinutes)
	}

	openTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return SlotGrid{}, fmt.Errorf("slot grid %s: invalid start: %w", typ, err)
	}
	closeTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return SlotGrid{}, fmt.Errorf("slot grid %s: invalid end: %w", typ, err)
	}
	if !openTime.IsBefore(closeTime) {
		return SlotGrid{}, fmt.Errorf("slot grid %s: start %s must be before end %s", typ, openTime, closeTime)
	}

	times := make([]types.TimeString, 0)
	current := openTime
	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			return SlotGrid{}, fmt.Errorf("slot grid %s: %w", typ, err)
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}
		times = append(times, current)
		current = slotEnd
	}

	return SlotGrid{Type: typ, Times: times, DurationMinutes: durationMinutes}, nil
}

// Contains проверяет, что время принадлежит сетке
func (g SlotGrid) Contains(t types.TimeString) bool {
	for _, ts := range g.Times {
		if ts.Equal(t) {
			return true
		}
	}
	return false
}

// Slots возвращает все слоты сетки в хронологическом порядке
func (g SlotGrid) Slots() []Slot {
	slots := make([]Slot, len(g.Times))
	for i, ts := range g.Times {
		slots[i] = NewSlot(ts, g.DurationMinutes)
	}
	return slots
}
