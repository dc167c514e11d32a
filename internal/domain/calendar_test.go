package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(date(2024, 6, 15)))  // суббота
	assert.True(t, IsWeekend(date(2024, 6, 16)))  // воскресенье
	assert.False(t, IsWeekend(date(2024, 6, 10))) // понедельник
	assert.False(t, IsWeekend(date(2024, 6, 14))) // пятница
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsPastDate(date(2024, 6, 9), now))
	assert.False(t, IsPastDate(date(2024, 6, 11), now))

	// Сегодняшняя дата не считается прошедшей, время суток игнорируется
	assert.False(t, IsPastDate(date(2024, 6, 10), now))
}

func TestMaxBookableDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"обычный месяц", date(2024, 6, 10), date(2024, 9, 10)},
		{"конец месяца с ограничением дня", date(2024, 1, 31), date(2024, 4, 30)},
		{"переход через конец года", date(2024, 11, 15), date(2025, 2, 15)},
		{"31 декабря", date(2024, 12, 31), date(2025, 3, 31)},
		{"30 ноября в февраль невисокосного года", date(2024, 11, 30), date(2025, 2, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxBookableDate(tt.now))
		})
	}
}

func TestIsBookable(t *testing.T) {
	// 2024-06-10 - понедельник
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"суббота", date(2024, 6, 15), false},
		{"воскресенье", date(2024, 6, 16), false},
		{"завтра", date(2024, 6, 11), true},
		{"сегодня", date(2024, 6, 10), true},
		{"вчера", date(2024, 6, 9), false},
		{"последний день окна", date(2024, 9, 10), true},
		{"за пределами окна", date(2024, 9, 12), false},
		{"будний день в середине окна", date(2024, 8, 14), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBookable(tt.date, now))
		})
	}
}

func TestIsBookable_MixedTimezones(t *testing.T) {
	// Дата запроса парсится в UTC, "сейчас" живёт в таймзоне кабинета.
	// Границы окна должны сравниваться как календарные даты, а не как
	// моменты времени, иначе смещение таймзоны съедает крайние дни
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("last day of window with Paris now", func(t *testing.T) {
		now := time.Date(2024, 6, 10, 12, 0, 0, 0, paris)
		assert.Equal(t, "2024-09-10", MaxBookableDate(now).Format(DateFormat))
		assert.True(t, IsBookable(date(2024, 9, 10), now))
		assert.False(t, IsBookable(date(2024, 9, 11), now))
	})

	t.Run("today with west-of-UTC now", func(t *testing.T) {
		now := time.Date(2024, 6, 10, 12, 0, 0, 0, newYork)
		assert.False(t, IsPastDate(date(2024, 6, 10), now))
		assert.True(t, IsBookable(date(2024, 6, 10), now))
	})

	t.Run("yesterday stays past with east-of-UTC now", func(t *testing.T) {
		now := time.Date(2024, 6, 10, 0, 30, 0, 0, paris)
		assert.True(t, IsPastDate(date(2024, 6, 7), now))
		assert.False(t, IsBookable(date(2024, 6, 7), now))
	})
}

func TestIsBookable_WindowEndOnWeekend(t *testing.T) {
	// 2024-03-29 - пятница; 2024-06-29 - суббота: конец окна попадает
	// на выходной и сам по себе недоступен
	now := date(2024, 3, 29)

	assert.Equal(t, date(2024, 6, 29), MaxBookableDate(now))
	assert.False(t, IsBookable(date(2024, 6, 29), now))
	assert.True(t, IsBookable(date(2024, 6, 28), now))
}
