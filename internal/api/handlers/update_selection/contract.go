package update_selection

import (
	"context"

	updateSelectionUC "github.com/m04kA/BookingWizardService/internal/usecase/update_selection"
)

type UpdateSelectionUseCase interface {
	Execute(ctx context.Context, req *updateSelectionUC.Request) (*updateSelectionUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
