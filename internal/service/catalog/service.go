package catalog

import (
	"context"
	"errors"
	"fmt"

	scheduleClient "github.com/m04kA/BookingWizardService/internal/integrations/scheduleservice"
	"github.com/m04kA/BookingWizardService/internal/service/catalog/models"
)

// Service сервис каталога услуг и специалистов для первого шага мастера
type Service struct {
	scheduleClient ScheduleServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(scheduleClient ScheduleServiceClient, logger Logger) *Service {
	return &Service{
		scheduleClient: scheduleClient,
		logger:         logger,
	}
}

// GetCatalog загружает списки услуг и специалистов из бэкенда
func (s *Service) GetCatalog(ctx context.Context, token string) (*models.CatalogResponse, error) {
	services, err := s.scheduleClient.ListServices(ctx, token)
	if err != nil {
		return nil, s.integrationError("GetCatalog: failed to list services", err)
	}

	professionals, err := s.scheduleClient.ListProfessionals(ctx, token)
	if err != nil {
		return nil, s.integrationError("GetCatalog: failed to list professionals", err)
	}

	resp := models.FromIntegration(services, professionals)
	s.logger.Info("GetCatalog: loaded %d services, %d professionals",
		len(resp.Services), len(resp.Professionals))
	return resp, nil
}

func (s *Service) integrationError(msg string, err error) error {
	if errors.Is(err, scheduleClient.ErrUnauthorized) {
		s.logger.Warn("%s: unauthorized", msg)
		return ErrUnauthorized
	}
	s.logger.Error("%s: %v", msg, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
