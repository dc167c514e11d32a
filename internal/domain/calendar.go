package domain

import "time"

// Booking window rules:
// - weekdays only (Monday to Friday)
// - date must not be in the past (date-only comparison, time of day is ignored)
// - date must not be later than now + BookingWindowMonths calendar months,
//   with month-end clamping (Jan 31 + 3 months -> Apr 30)

// DateOnly обнуляет время, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWeekend проверяет, что дата приходится на субботу или воскресенье
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsPastDate проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsPastDate(date, now time.Time) bool {
	return dateBefore(date, now)
}

// MaxBookableDate возвращает последнюю дату, доступную для бронирования:
// сегодня + BookingWindowMonths календарных месяцев
func MaxBookableDate(now time.Time) time.Time {
	return addMonthsClamped(DateOnly(now), BookingWindowMonths)
}

// IsAfterWindow проверяет, что дата за пределами окна бронирования
func IsAfterWindow(date, now time.Time) bool {
	return dateBefore(MaxBookableDate(now), date)
}

// IsBookable возвращает true, если дата доступна для бронирования:
// будний день внутри окна [сегодня, сегодня + BookingWindowMonths месяцев]
func IsBookable(date, now time.Time) bool {
	if IsWeekend(date) {
		return false
	}
	if IsPastDate(date, now) {
		return false
	}
	if IsAfterWindow(date, now) {
		return false
	}
	return true
}

// dateBefore сравнивает календарные даты по (год, месяц, день).
// Дата запроса и "сейчас" могут жить в разных таймзонах (запрос парсится
// в UTC, время кабинета - Europe/Paris); сравнение моментов времени
// сдвигало бы границы окна на день
func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

// addMonthsClamped прибавляет months календарных месяцев с ограничением
// дня последним днём целевого месяца. time.AddDate здесь не подходит:
// он нормализует 31 апреля в 1 мая вместо 30 апреля
func addMonthsClamped(date time.Time, months int) time.Time {
	year, month, day := date.Date()

	targetMonth := time.Month(int(month) + months)
	firstOfTarget := time.Date(year, targetMonth, 1, 0, 0, 0, 0, date.Location())

	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, date.Location())
}
