package refresh_slots

import (
	"time"

	"github.com/m04kA/BookingWizardService/internal/domain"
)

// filterBookable отбирает из кандидатов слоты, которые ещё можно забронировать
// Правило: слот на будущий календарный день бронируется всегда; слот на сегодня
// бронируется, только если его начало не раньше now + leadTimeMinutes
// Слоты на прошедшие дни и непарсящиеся строки отбрасываются
// Порядок входного списка сохраняется; функция чистая - now передается явно
func filterBookable(candidates []string, now time.Time, leadTimeMinutes int) []string {
	cutoff := now.Add(time.Duration(leadTimeMinutes) * time.Minute)
	today := domain.DateOnly(now)

	bookable := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		start, err := domain.ParseSlotTime(candidate, now.Location())
		if err != nil {
			continue
		}

		slotDay := domain.DateOnly(start)
		switch {
		case slotDay.After(today):
			// Будущий день: проверка lead time не применяется
			bookable = append(bookable, candidate)
		case slotDay.Equal(today) && !start.Before(cutoff):
			bookable = append(bookable, candidate)
		}
	}

	return bookable
}
