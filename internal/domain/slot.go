package domain

import "github.com/avergne/CFD-RdvService/pkg/types"

// Slot represents a bookable time slot for a given appointment type.
// Slots are derived values: they are recomputed from current appointment
// state on every request and never stored
type Slot struct {
	StartTime       types.TimeString
	Display         string
	DurationMinutes int
}

// NewSlot создает слот с локализованной подписью для клиента
func NewSlot(start types.TimeString, durationMinutes int) Slot {
	return Slot{
		StartTime:       start,
		Display:         start.Display(),
		DurationMinutes: durationMinutes,
	}
}
