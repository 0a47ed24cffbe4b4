package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookingWizardService/internal/domain"
	sessionStore "github.com/m04kA/BookingWizardService/internal/infra/storage/sessions"
	"github.com/m04kA/BookingWizardService/internal/service/sessions/models"
)

// Service сервис жизненного цикла сессий мастера бронирования
type Service struct {
	store   SessionStore
	metrics Metrics
	logger  Logger

	newID func() string
	now   func() time.Time
}

// NewService создает новый экземпляр сервиса сессий
func NewService(store SessionStore, metrics Metrics, logger Logger) *Service {
	return &Service{
		store:   store,
		metrics: metrics,
		logger:  logger,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Create создает новую сессию мастера на первом шаге
// Дата по умолчанию - сегодня
func (s *Service) Create(ctx context.Context) (*models.SessionResponse, error) {
	session := domain.NewWizardSession(s.newID(), s.now())

	if err := s.store.Create(ctx, session); err != nil {
		s.logger.Error("Create: failed to store session id=%s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: Create - store error: %v", ErrInternal, err)
	}

	s.metrics.IncSessionCreated()
	s.logger.Info("Create: session id=%s created", session.ID)
	return models.FromDomainSession(session), nil
}

// Get возвращает текущее состояние сессии
func (s *Service) Get(ctx context.Context, id string) (*models.SessionResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			s.logger.Warn("Get: session id=%s not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Get: store error for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - store error: %v", ErrInternal, err)
	}

	return models.FromDomainSession(session), nil
}

// Advance переводит мастер на шаг выбора даты и времени
// Переход разрешён только с первого шага и только когда выбраны
// и услуга, и мастер
func (s *Service) Advance(ctx context.Context, id string) (*models.SessionResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	session, err := s.store.Mutate(ctx, id, func(ws *domain.WizardSession) error {
		if !ws.CanAdvance() {
			return ErrCannotAdvance
		}
		ws.Advance()
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionStore.ErrSessionNotFound):
			s.logger.Warn("Advance: session id=%s not found", id)
			return nil, ErrSessionNotFound
		case errors.Is(err, ErrCannotAdvance):
			s.logger.Warn("Advance: session id=%s cannot advance", id)
			return nil, ErrCannotAdvance
		default:
			s.logger.Error("Advance: store error for session id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Advance - store error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Advance: session id=%s moved to step=%s", id, session.Step)
	return models.FromDomainSession(session), nil
}

// Back возвращает мастер на первый шаг
// Выбранный слот сбрасывается; с финального шага возврата нет
func (s *Service) Back(ctx context.Context, id string) (*models.SessionResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	session, err := s.store.Mutate(ctx, id, func(ws *domain.WizardSession) error {
		if !ws.CanGoBack() {
			return ErrCannotGoBack
		}
		ws.Back()
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionStore.ErrSessionNotFound):
			s.logger.Warn("Back: session id=%s not found", id)
			return nil, ErrSessionNotFound
		case errors.Is(err, ErrCannotGoBack):
			s.logger.Warn("Back: session id=%s cannot go back from step", id)
			return nil, ErrCannotGoBack
		default:
			s.logger.Error("Back: store error for session id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Back - store error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Back: session id=%s returned to step=%s", id, session.Step)
	return models.FromDomainSession(session), nil
}

// Delete удаляет сессию мастера
// Удаление несуществующей сессии не считается ошибкой
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	s.store.Delete(ctx, id)
	s.logger.Info("Delete: session id=%s removed", id)
	return nil
}
