package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", ts.String())

	// Паддинг обязателен: "9:00" лексикографически больше "15:00"
	_, err = NewTimeStringFromString("9:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("09:5")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("009:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 6, 10, 14, 30, 59, 0, time.UTC))
	assert.Equal(t, "14:30", ts.String())
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:30"))
	assert.True(t, TimeString("15:30").IsAfter("15:00"))
	assert.True(t, TimeString("12:00").Equal("12:00"))
	assert.False(t, TimeString("12:00").Equal("12:30"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
	}{
		{"09:00", 60, "10:00"},
		{"09:00", 30, "09:30"},
		{"15:30", 30, "16:00"},
		{"09:45", 15, "10:00"},
	}
	for _, tt := range tests {
		got, err := TimeString(tt.start).AddMinutes(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String())
	}

	_, err := TimeString("garbage").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Display(t *testing.T) {
	assert.Equal(t, "09h00", TimeString("09:00").Display())
	assert.Equal(t, "15h30", TimeString("15:30").Display())
}
