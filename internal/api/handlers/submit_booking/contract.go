package submit_booking

import (
	"context"

	submitBookingUC "github.com/m04kA/BookingWizardService/internal/usecase/submit_booking"
)

type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBookingUC.Request) (*submitBookingUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
