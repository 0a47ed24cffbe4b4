package update_selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BookingWizardService/internal/domain"
	sessionStore "github.com/m04kA/BookingWizardService/internal/infra/storage/sessions"
	refreshSlots "github.com/m04kA/BookingWizardService/internal/usecase/refresh_slots"
)

// UseCase use case изменения выбора пользователя в сессии мастера
// Формализует реактивный паттерн "перевыборка при изменении зависимостей":
// изменение услуги/специалиста/даты на шаге выбора времени явно запускает
// новую выборку слотов
type UseCase struct {
	store     SessionStore
	refresher SlotRefresher
	logger    Logger

	// launchRefresh запускает выборку слотов; в production - в горутине,
	// в тестах подменяется на синхронный вызов
	launchRefresh func(ctx context.Context, req *refreshSlots.Request)
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SessionStore, refresher SlotRefresher, logger Logger) *UseCase {
	uc := &UseCase{
		store:     store,
		refresher: refresher,
		logger:    logger,
	}
	uc.launchRefresh = uc.asyncRefresh
	return uc
}

// Execute применяет изменение выбора к сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Date != nil && req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
	}

	slotAccepted := true

	// 2. Применяем изменения атомарно
	// Порядок фиксированный: сначала upstream поля (они сбрасывают слот
	// и кандидатов), затем слот
	session, err := uc.store.Mutate(ctx, req.SessionID, func(s *domain.WizardSession) error {
		if s.Step.IsTerminal() {
			return ErrWizardFinished
		}
		if req.ServiceID != nil {
			s.SetService(*req.ServiceID)
		}
		if req.ProfessionalID != nil {
			s.SetProfessional(*req.ProfessionalID)
		}
		if req.Date != nil {
			s.SetDate(*req.Date)
		}
		if req.Slot != nil {
			// Защитная проверка: слот вне списка кандидатов игнорируется
			slotAccepted = s.SetSlot(*req.Slot)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("UpdateSelection: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		if errors.Is(err, ErrWizardFinished) {
			uc.logger.Warn("UpdateSelection: session id=%s already finished", req.SessionID)
			return nil, err
		}
		uc.logger.Error("UpdateSelection: failed to update session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
	}

	if req.Slot != nil && !slotAccepted {
		uc.logger.Warn("UpdateSelection: slot %s rejected for session=%s: not in candidate list",
			*req.Slot, req.SessionID)
	}

	// 3. Изменение тройки на шаге выбора времени запускает новую выборку
	// Выборка асинхронна; устаревшие ответы отбрасываются по ключу запроса
	refreshTriggered := false
	if req.HasUpstreamChange() && session.Step == domain.StepDateTime && session.Selection.IsComplete() {
		refreshTriggered = true
		uc.launchRefresh(ctx, &refreshSlots.Request{
			SessionID: req.SessionID,
			Token:     req.Token,
		})
	}

	uc.logger.Info("UpdateSelection: session=%s updated, step=%s, refresh=%t",
		req.SessionID, session.Step, refreshTriggered)

	return &Response{
		Session:          session,
		SlotAccepted:     slotAccepted,
		RefreshTriggered: refreshTriggered,
	}, nil
}

// asyncRefresh запускает выборку слотов в горутине
// Контекст запроса к этому моменту может быть отменён, поэтому выборка
// живёт в собственном контексте
func (uc *UseCase) asyncRefresh(ctx context.Context, req *refreshSlots.Request) {
	go func() {
		if _, err := uc.refresher.Execute(context.WithoutCancel(ctx), req); err != nil {
			uc.logger.Error("UpdateSelection: background slot refresh failed for session=%s: %v",
				req.SessionID, err)
		}
	}()
}
