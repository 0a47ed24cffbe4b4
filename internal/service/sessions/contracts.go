package sessions

import (
	"context"

	"github.com/m04kA/BookingWizardService/internal/domain"
)

// SessionStore интерфейс хранилища сессий мастера
type SessionStore interface {
	Create(ctx context.Context, session *domain.WizardSession) error
	Get(ctx context.Context, id string) (*domain.WizardSession, error)
	Mutate(ctx context.Context, id string, fn func(session *domain.WizardSession) error) (*domain.WizardSession, error)
	Delete(ctx context.Context, id string)
}

// Metrics интерфейс метрик жизненного цикла сессий
type Metrics interface {
	IncSessionCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
