package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingWindowMonths окно бронирования в календарных месяцах от сегодня
const BookingWindowMonths = 3

// Business validation constants
const (
	MaxNameLength    = 100
	MaxSubjectLength = 200
	MaxNotesLength   = 1000
	MaxPhoneLength   = 20
)
