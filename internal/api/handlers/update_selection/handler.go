package update_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BookingWizardService/internal/api/handlers"
	"github.com/m04kA/BookingWizardService/internal/api/middleware"
	sessionModels "github.com/m04kA/BookingWizardService/internal/service/sessions/models"
	updateSelectionUC "github.com/m04kA/BookingWizardService/internal/usecase/update_selection"
)

const (
	msgMissingSessionID   = "отсутствует ID сессии"
	msgMissingToken       = "отсутствует токен доступа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgWizardFinished     = "запись уже подтверждена, изменение выбора недоступно"
	msgNothingToUpdate    = "не передано ни одного изменяемого поля"
)

type Handler struct {
	usecase UpdateSelectionUseCase
	logger  Logger
}

func NewHandler(usecase UpdateSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/wizard-sessions/{sessionId}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("PATCH /wizard-sessions/{id}/selection - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("PATCH /wizard-sessions/{id}/selection - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /wizard-sessions/{id}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUsecaseRequest(sessionID, token)
	if err != nil {
		h.logger.Warn("PATCH /wizard-sessions/{id}/selection - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.usecase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSelectionUC.ErrSessionNotFound):
			h.logger.Warn("PATCH /wizard-sessions/{id}/selection - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, updateSelectionUC.ErrWizardFinished):
			h.logger.Warn("PATCH /wizard-sessions/{id}/selection - Wizard finished: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgWizardFinished)

		case errors.Is(err, updateSelectionUC.ErrInvalidInput):
			h.logger.Warn("PATCH /wizard-sessions/{id}/selection - Invalid input: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondBadRequest(w, msgNothingToUpdate)

		default:
			h.logger.Error("PATCH /wizard-sessions/{id}/selection - Failed: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /wizard-sessions/{id}/selection - Selection updated: session_id=%s, refresh=%t",
		sessionID, result.RefreshTriggered)
	handlers.RespondJSON(w, http.StatusOK, &UpdateSelectionResponse{
		Session:          sessionModels.FromDomainSession(result.Session),
		SlotAccepted:     result.SlotAccepted,
		RefreshTriggered: result.RefreshTriggered,
	})
}
