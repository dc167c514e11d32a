package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avergne/CFD-RdvService/pkg/types"
)

func TestNewSlotGrid_Hourly(t *testing.T) {
	grid, err := NewSlotGrid(TypeFormation, "09:00", "16:00", 60)
	require.NoError(t, err)

	want := []types.TimeString{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00"}
	assert.Equal(t, want, grid.Times)
	assert.Equal(t, 60, grid.DurationMinutes)
}

func TestNewSlotGrid_HalfHour(t *testing.T) {
	grid, err := NewSlotGrid(TypeLivrables, "09:00", "16:00", 30)
	require.NoError(t, err)

	require.Len(t, grid.Times, 14)
	assert.Equal(t, types.TimeString("09:00"), grid.Times[0])
	assert.Equal(t, types.TimeString("09:30"), grid.Times[1])
	assert.Equal(t, types.TimeString("15:30"), grid.Times[13])
}

func TestNewSlotGrid_LastSlotMustFit(t *testing.T) {
	// Слот 09:40-10:20 не помещается до 10:00 и отбрасывается
	grid, err := NewSlotGrid(TypeLivrables, "09:00", "10:00", 40)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00"}, grid.Times)
}

func TestNewSlotGrid_Invalid(t *testing.T) {
	_, err := NewSlotGrid(TypeFormation, "16:00", "09:00", 60)
	assert.Error(t, err)

	_, err = NewSlotGrid(TypeFormation, "09:00", "16:00", 0)
	assert.Error(t, err)

	_, err = NewSlotGrid(TypeFormation, "9am", "16:00", 60)
	assert.Error(t, err)
}

func TestSlotGrid_Contains(t *testing.T) {
	grid, err := NewSlotGrid(TypeFormation, "09:00", "16:00", 60)
	require.NoError(t, err)

	assert.True(t, grid.Contains("09:00"))
	assert.True(t, grid.Contains("15:00"))
	assert.False(t, grid.Contains("16:00"))
	assert.False(t, grid.Contains("09:30"))
	assert.False(t, grid.Contains("08:00"))
}

func TestSlotGrid_Slots(t *testing.T) {
	grid, err := NewSlotGrid(TypeFormation, "09:00", "11:00", 60)
	require.NoError(t, err)

	slots := grid.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, "09h00", slots[0].Display)
	assert.Equal(t, 60, slots[0].DurationMinutes)
	assert.Equal(t, "10h00", slots[1].Display)
}
