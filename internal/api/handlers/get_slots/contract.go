package get_slots

import (
	"context"

	refreshSlotsUC "github.com/m04kA/BookingWizardService/internal/usecase/refresh_slots"
)

type RefreshSlotsUseCase interface {
	Execute(ctx context.Context, req *refreshSlotsUC.Request) (*refreshSlotsUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
