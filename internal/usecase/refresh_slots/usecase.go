package refresh_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BookingWizardService/internal/domain"
	sessionStore "github.com/m04kA/BookingWizardService/internal/infra/storage/sessions"
)

// UseCase use case выборки доступных слотов для сессии мастера
// Реализует правило last-request-wins: результат применяется к сессии, только
// если тройка (услуга, специалист, дата) не изменилась, пока запрос был в полёте
type UseCase struct {
	store           SessionStore
	scheduleClient  ScheduleServiceClient
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
	leadTimeMinutes int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SessionStore,
	scheduleClient ScheduleServiceClient,
	metrics Metrics,
	leadTimeMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:           store,
		scheduleClient:  scheduleClient,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		leadTimeMinutes: leadTimeMinutes,
	}
}

// Execute выполняет выборку слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	// 2. Фиксируем ключ запроса и параметры тройки под блокировкой
	var (
		key            string
		professionalID string
		serviceID      string
		date           time.Time
	)

	_, err := uc.store.Mutate(ctx, req.SessionID, func(s *domain.WizardSession) error {
		if s.Step != domain.StepDateTime || !s.Selection.IsComplete() {
			return ErrNotReady
		}
		key = s.QueryKey()
		professionalID = *s.Selection.ProfessionalID
		serviceID = *s.Selection.ServiceID
		date = s.Selection.Date
		s.BeginFetch()
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("RefreshSlots: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		if errors.Is(err, ErrNotReady) {
			return nil, err
		}
		uc.logger.Error("RefreshSlots: failed to begin fetch for session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to begin fetch: %v", ErrInternal, err)
	}

	uc.logger.Info("RefreshSlots: fetching slots for session=%s, professional=%s, service=%s, date=%s",
		req.SessionID, professionalID, serviceID, date.Format(domain.DateFormat))

	// 3. Запрашиваем слоты у провайдера (вне блокировки хранилища)
	// Любая ошибка провайдера трактуется единообразно как "слотов нет";
	// повтор произойдёт естественно при следующем изменении выбора
	raw, err := uc.scheduleClient.GetAvailableSlots(ctx, req.Token, professionalID, serviceID, date)
	if err != nil {
		uc.logger.Error("RefreshSlots: slot provider failed for session=%s: %v", req.SessionID, err)
		uc.metrics.IncSlotFetch("error")
		raw = []string{}
	} else {
		uc.metrics.IncSlotFetch("ok")
	}

	// 4. Фильтруем слоты по lead time
	filtered := filterBookable(raw, uc.timeProvider.Now(), uc.leadTimeMinutes)

	// 5. Применяем результат, если выбор не изменился за время запроса
	applied := false
	_, err = uc.store.Mutate(ctx, req.SessionID, func(s *domain.WizardSession) error {
		applied = s.ApplyCandidates(key, filtered)
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			// Сессия исчезла, пока запрос был в полёте: результат никому не нужен
			uc.logger.Warn("RefreshSlots: session id=%s gone before slots applied", req.SessionID)
			return &Response{Candidates: []string{}, Applied: false}, nil
		}
		uc.logger.Error("RefreshSlots: failed to apply slots for session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to apply slots: %v", ErrInternal, err)
	}

	if !applied {
		// Ответ устарел: выбор изменился, пока запрос был в полёте
		// Это не ошибка, а внутреннее правило консистентности
		uc.logger.Info("RefreshSlots: stale response discarded for session=%s, key=%s", req.SessionID, key)
		uc.metrics.IncStaleDiscard()
		return &Response{Candidates: []string{}, Applied: false}, nil
	}

	uc.logger.Info("RefreshSlots: applied %d of %d slots for session=%s",
		len(filtered), len(raw), req.SessionID)

	return &Response{Candidates: filtered, Applied: true}, nil
}
