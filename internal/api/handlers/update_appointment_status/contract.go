package update_appointment_status

import (
	"context"

	"github.com/m04kA/BookingWizardService/internal/service/appointments/models"
)

type AppointmentService interface {
	UpdateStatus(ctx context.Context, token, appointmentID, status string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
