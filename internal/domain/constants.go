package domain

import "time"

// Default configuration values
const (
	// DefaultLeadTimeMinutes минимальное время (в минутах) до начала слота,
	// за которое ещё можно забронировать слот на сегодняшний день
	DefaultLeadTimeMinutes = 15

	// DefaultSessionTTLMinutes время жизни неактивной сессии мастера бронирования
	DefaultSessionTTLMinutes = 30
)

// Business validation constants
const (
	MinLeadTimeMinutes = 0
	MaxLeadTimeMinutes = 1440 // сутки
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// slotTimeLayouts поддерживаемые форматы времени слота
// Бэкенд отдаёт ISO-8601 datetime, иногда без секунд и без таймзоны
var slotTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseSlotTime парсит ISO-8601 строку времени слота
// Строки без таймзоны интерпретируются в переданной локации
func ParseSlotTime(value string, loc *time.Location) (time.Time, error) {
	var lastErr error
	for _, layout := range slotTimeLayouts {
		if layout == time.RFC3339 {
			t, err := time.Parse(layout, value)
			if err == nil {
				return t, nil
			}
			lastErr = err
			continue
		}
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// SameDay проверяет, что два момента времени относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
