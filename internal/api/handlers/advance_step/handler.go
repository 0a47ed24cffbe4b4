package advance_step

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
	msgCannotAdvance    = "для перехода выберите услугу и специалиста"
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

// Handle POST /api/v1/wizard-sessions/{sessionId}/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("POST /wizard-sessions/{id}/advance - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	session, err := h.service.Advance(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /wizard-sessions/{id}/advance - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrCannotAdvance):
			h.logger.Warn("POST /wizard-sessions/{id}/advance - Cannot advance: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgCannotAdvance)

		default:
			h.logger.Error("POST /wizard-sessions/{id}/advance - Failed: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard-sessions/{id}/advance - Session advanced: session_id=%s, step=%s",
		sessionID, session.Step)
	handlers.RespondJSON(w, http.StatusOK, session)
}
