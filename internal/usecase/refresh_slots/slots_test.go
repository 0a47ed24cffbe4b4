package refresh_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterBookable(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		candidates []string
		leadTime   int
		want       []string
	}{
		{
			name: "same day past and future, next day kept",
			candidates: []string{
				"2024-06-01T09:00", // прошёл
				"2024-06-01T10:20", // сегодня, после lead time
				"2024-06-02T08:00", // будущий день, lead time не применяется
			},
			leadTime: 15,
			want:     []string{"2024-06-01T10:20", "2024-06-02T08:00"},
		},
		{
			name:       "slot exactly at cutoff is bookable",
			candidates: []string{"2024-06-01T10:15"},
			leadTime:   15,
			want:       []string{"2024-06-01T10:15"},
		},
		{
			name:       "slot just before cutoff is dropped",
			candidates: []string{"2024-06-01T10:14"},
			leadTime:   15,
			want:       []string{},
		},
		{
			name:       "past day is dropped",
			candidates: []string{"2024-05-31T23:00", "2024-06-02T08:00"},
			leadTime:   15,
			want:       []string{"2024-06-02T08:00"},
		},
		{
			name:       "zero lead time keeps current minute",
			candidates: []string{"2024-06-01T10:00", "2024-06-01T09:59"},
			leadTime:   0,
			want:       []string{"2024-06-01T10:00"},
		},
		{
			name:       "unparseable candidates are dropped",
			candidates: []string{"garbage", "2024-06-02T08:00"},
			leadTime:   15,
			want:       []string{"2024-06-02T08:00"},
		},
		{
			name:       "input order preserved",
			candidates: []string{"2024-06-02T12:00", "2024-06-02T08:00", "2024-06-01T11:00"},
			leadTime:   15,
			want:       []string{"2024-06-02T12:00", "2024-06-02T08:00", "2024-06-01T11:00"},
		},
		{
			name:       "empty input",
			candidates: []string{},
			leadTime:   15,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterBookable(tt.candidates, now, tt.leadTime)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterBookable_Idempotent(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	candidates := []string{
		"2024-06-01T09:00",
		"2024-06-01T10:20",
		"2024-06-02T08:00",
	}

	once := filterBookable(candidates, now, 15)
	twice := filterBookable(once, now, 15)

	// Фильтрация - неподвижная точка: повторное применение ничего не меняет
	assert.Equal(t, once, twice)
}

func TestFilterBookable_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	candidates := []string{"2024-06-01T09:00", "2024-06-02T08:00"}

	_ = filterBookable(candidates, now, 15)

	assert.Equal(t, []string{"2024-06-01T09:00", "2024-06-02T08:00"}, candidates)
}
