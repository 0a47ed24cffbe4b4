package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BookingWizardService/internal/domain"
	sessionStore "github.com/m04kA/BookingWizardService/internal/infra/storage/sessions"
	appointmentClient "github.com/m04kA/BookingWizardService/internal/integrations/appointmentservice"
)

// UseCase use case отправки бронирования в бэкенд
// Бэкенд - единственный арбитр конфликтов: отказ показывается пользователю
// дословно, автоматических повторов нет
type UseCase struct {
	store             SessionStore
	appointmentClient AppointmentServiceClient
	metrics           Metrics
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SessionStore,
	appointmentClient AppointmentServiceClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:             store,
		appointmentClient: appointmentClient,
		metrics:           metrics,
		logger:            logger,
	}
}

// Execute выполняет отправку бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	// 2. Захватываем право на отправку атомарно: защита от двойного сабмита
	// Черновик собирается под той же блокировкой, чтобы выбор не уехал
	var draft *domain.AppointmentDraft
	_, err := uc.store.Mutate(ctx, req.SessionID, func(s *domain.WizardSession) error {
		if s.Step != domain.StepDateTime {
			return ErrWrongStep
		}
		if s.Submitting {
			return ErrSubmitInFlight
		}
		if s.Selection.Slot == nil {
			return ErrNoSlotSelected
		}
		draft = s.Draft()
		if draft == nil {
			return ErrNoSlotSelected
		}
		s.StartSubmit()
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionStore.ErrSessionNotFound):
			uc.logger.Warn("SubmitBooking: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		case errors.Is(err, ErrWrongStep), errors.Is(err, ErrSubmitInFlight), errors.Is(err, ErrNoSlotSelected):
			uc.logger.Warn("SubmitBooking: guard failed for session id=%s: %v", req.SessionID, err)
			return nil, err
		default:
			uc.logger.Error("SubmitBooking: failed to begin submit for session id=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to begin submit: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("SubmitBooking: submitting session=%s, professional=%s, service=%s, start=%s",
		req.SessionID, draft.ProfessionalID, draft.ServiceID, draft.StartDT)

	// 3. Отправляем черновик в бэкенд
	appointment, err := uc.appointmentClient.CreateAppointment(ctx, req.Token, draft)
	if err != nil {
		return nil, uc.failSubmit(ctx, req.SessionID, err)
	}

	// 4. Успех: мастер переходит на финальный шаг
	session, err := uc.store.Mutate(ctx, req.SessionID, func(s *domain.WizardSession) error {
		s.FinishSubmit(appointment.ID)
		return nil
	})
	if err != nil {
		uc.logger.Error("SubmitBooking: booking created but session id=%s update failed: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to finish submit: %v", ErrInternal, err)
	}

	uc.metrics.IncSubmit("accepted")
	uc.logger.Info("SubmitBooking: session=%s confirmed, appointment=%s, status=%s",
		req.SessionID, appointment.ID, appointment.Status)

	return &Response{
		AppointmentID: appointment.ID,
		Status:        appointment.Status,
		StartDT:       appointment.StartDT,
		Session:       session,
	}, nil
}

// failSubmit фиксирует неуспешную отправку и возвращает ошибку для пользователя
// Сессия остаётся на шаге выбора, слот сохраняется: пользователь может
// повторить отправку или выбрать другой слот
func (uc *UseCase) failSubmit(ctx context.Context, sessionID string, cause error) error {
	message := "booking failed due to a server error"

	var rejected *appointmentClient.RejectedError
	if errors.As(cause, &rejected) {
		// Отказ бэкенда: сообщение показывается дословно
		message = rejected.Message
		uc.metrics.IncSubmit("rejected")
		uc.logger.Warn("SubmitBooking: booking rejected for session=%s: %s", sessionID, message)
	} else {
		uc.metrics.IncSubmit("failed")
		uc.logger.Error("SubmitBooking: submission failed for session=%s: %v", sessionID, cause)
	}

	if _, err := uc.store.Mutate(ctx, sessionID, func(s *domain.WizardSession) error {
		s.FailSubmit(message)
		return nil
	}); err != nil {
		uc.logger.Error("SubmitBooking: failed to record submit failure for session=%s: %v", sessionID, err)
	}

	return &RejectedError{Message: message}
}
