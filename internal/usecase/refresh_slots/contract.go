package refresh_slots

import (
	"context"
	"time"

	"github.com/m04kA/BookingWizardService/internal/domain"
)

// SessionStore интерфейс хранилища сессий мастера
type SessionStore interface {
	// Mutate атомарно изменяет сессию; изменения при ошибке fn не сохраняются
	Mutate(ctx context.Context, id string, fn func(session *domain.WizardSession) error) (*domain.WizardSession, error)
}

// ScheduleServiceClient интерфейс клиента ScheduleService (провайдер слотов)
type ScheduleServiceClient interface {
	GetAvailableSlots(ctx context.Context, token, professionalID, serviceID string, date time.Time) ([]string, error)
}

// Metrics интерфейс метрик выборки слотов
type Metrics interface {
	// IncSlotFetch result: ok | error | stale
	IncSlotFetch(result string)
	IncStaleDiscard()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
