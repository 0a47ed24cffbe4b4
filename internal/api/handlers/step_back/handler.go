package step_back

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BookingWizardService/internal/api/handlers"
	"github.com/m04kA/BookingWizardService/internal/service/sessions"
)

const (
	msgMissingSessionID = "отсутствует ID сессии"
	msgSessionNotFound  = "сессия не найдена или истекла"
	msgCannotGoBack     = "возврат назад с этого шага невозможен"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard-sessions/{sessionId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("POST /wizard-sessions/{id}/back - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	session, err := h.service.Back(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /wizard-sessions/{id}/back - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrCannotGoBack):
			h.logger.Warn("POST /wizard-sessions/{id}/back - Cannot go back: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgCannotGoBack)

		default:
			h.logger.Error("POST /wizard-sessions/{id}/back - Failed: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard-sessions/{id}/back - Session moved back: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
