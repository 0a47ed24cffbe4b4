package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BookingWizardService/internal/domain"
	appointmentClient "github.com/m04kA/BookingWizardService/internal/integrations/appointmentservice"
	"github.com/m04kA/BookingWizardService/internal/service/appointments/models"
)

// Service сервис смены статусов записей
// Словарь статусов и допустимость переходов контролирует бэкенд;
// здесь проверяется только принадлежность статуса словарю
type Service struct {
	appointmentClient AppointmentServiceClient
	logger            Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentClient AppointmentServiceClient, logger Logger) *Service {
	return &Service{
		appointmentClient: appointmentClient,
		logger:            logger,
	}
}

// UpdateStatus меняет статус записи в бэкенде
func (s *Service) UpdateStatus(ctx context.Context, token, appointmentID, status string) (*models.AppointmentResponse, error) {
	if appointmentID == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	target := domain.AppointmentStatus(status)
	if !target.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status %q for appointment id=%s", status, appointmentID)
		return nil, ErrInvalidStatus
	}

	appointment, err := s.appointmentClient.UpdateStatus(ctx, token, appointmentID, target)
	if err != nil {
		var rejected *appointmentClient.RejectedError
		switch {
		case errors.Is(err, appointmentClient.ErrAppointmentNotFound):
			s.logger.Warn("UpdateStatus: appointment id=%s not found", appointmentID)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentClient.ErrUnauthorized):
			s.logger.Warn("UpdateStatus: unauthorized for appointment id=%s", appointmentID)
			return nil, ErrUnauthorized
		case errors.As(err, &rejected):
			// Отказ бэкенда: сообщение показывается дословно
			s.logger.Warn("UpdateStatus: rejected for appointment id=%s: %s", appointmentID, rejected.Message)
			return nil, &RejectedError{Message: rejected.Message}
		default:
			s.logger.Error("UpdateStatus: integration error for appointment id=%s: %v", appointmentID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - integration error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: appointment id=%s moved to status=%s", appointmentID, appointment.Status)
	return models.FromIntegration(appointment), nil
}
