package update_selection

import (
	"context"

	"github.com/m04kA/BookingWizardService/internal/domain"
	refreshSlots "github.com/m04kA/BookingWizardService/internal/usecase/refresh_slots"
)

// SessionStore интерфейс хранилища сессий мастера
type SessionStore interface {
	Mutate(ctx context.Context, id string, fn func(session *domain.WizardSession) error) (*domain.WizardSession, error)
}

// SlotRefresher интерфейс use case выборки слотов
// Запускается асинхронно после изменения тройки (услуга, специалист, дата)
type SlotRefresher interface {
	Execute(ctx context.Context, req *refreshSlots.Request) (*refreshSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
