package catalog

import (
	"context"

	"github.com/m04kA/BookingWizardService/internal/integrations/scheduleservice"
)

// ScheduleServiceClient интерфейс клиента каталога услуг и специалистов
type ScheduleServiceClient interface {
	ListServices(ctx context.Context, token string) ([]scheduleservice.Service, error)
	ListProfessionals(ctx context.Context, token string) ([]scheduleservice.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
