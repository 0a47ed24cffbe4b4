package get_catalog

import (
	"context"

	"github.com/m04kA/BookingWizardService/internal/service/catalog/models"
)

type CatalogService interface {
	GetCatalog(ctx context.Context, token string) (*models.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
