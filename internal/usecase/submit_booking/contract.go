package submit_booking

import (
	"context"

	"github.com/m04kA/BookingWizardService/internal/domain"
	"github.com/m04kA/BookingWizardService/internal/integrations/appointmentservice"
)

// SessionStore интерфейс хранилища сессий мастера
type SessionStore interface {
	Mutate(ctx context.Context, id string, fn func(session *domain.WizardSession) error) (*domain.WizardSession, error)
}

// AppointmentServiceClient интерфейс клиента AppointmentService (приём бронирований)
type AppointmentServiceClient interface {
	CreateAppointment(ctx context.Context, token string, draft *domain.AppointmentDraft) (*appointmentservice.Appointment, error)
}

// Metrics интерфейс метрик отправки бронирований
type Metrics interface {
	// IncSubmit result: accepted | rejected | failed
	IncSubmit(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
