package get_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BookingWizardService/internal/api/handlers"
	"github.com/m04kA/BookingWizardService/internal/api/middleware"
	refreshSlotsUC "github.com/m04kA/BookingWizardService/internal/usecase/refresh_slots"
)

const (
	msgMissingSessionID  = "отсутствует ID сессии"
	msgMissingToken      = "отсутствует токен доступа"
	msgSessionNotFound   = "сессия не найдена или истекла"
	msgSelectionNotReady = "для выборки слотов выберите услугу, специалиста и дату"
)

type Handler struct {
	usecase RefreshSlotsUseCase
	logger  Logger
}

func NewHandler(usecase RefreshSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/wizard-sessions/{sessionId}/slots
// Выполняет синхронную выборку слотов для текущего выбора сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("GET /wizard-sessions/{id}/slots - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("GET /wizard-sessions/{id}/slots - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &refreshSlotsUC.Request{
		SessionID: sessionID,
		Token:     token,
	})
	if err != nil {
		switch {
		case errors.Is(err, refreshSlotsUC.ErrSessionNotFound):
			h.logger.Warn("GET /wizard-sessions/{id}/slots - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, refreshSlotsUC.ErrNotReady):
			h.logger.Warn("GET /wizard-sessions/{id}/slots - Selection not ready: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSelectionNotReady)

		default:
			h.logger.Error("GET /wizard-sessions/{id}/slots - Failed: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /wizard-sessions/{id}/slots - Slots fetched: session_id=%s, count=%d, applied=%t",
		sessionID, len(result.Candidates), result.Applied)
	handlers.RespondJSON(w, http.StatusOK, &GetSlotsResponse{
		Slots:   result.Candidates,
		Applied: result.Applied,
	})
}
