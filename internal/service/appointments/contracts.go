package appointments

import (
	"context"

	"github.com/m04kA/BookingWizardService/internal/domain"
	"github.com/m04kA/BookingWizardService/internal/integrations/appointmentservice"
)

// AppointmentServiceClient интерфейс клиента AppointmentService
type AppointmentServiceClient interface {
	UpdateStatus(ctx context.Context, token, appointmentID string, status domain.AppointmentStatus) (*appointmentservice.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
