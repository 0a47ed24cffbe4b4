package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BookingWizardService/internal/api/handlers"
	"github.com/m04kA/BookingWizardService/internal/api/middleware"
	sessionModels "github.com/m04kA/BookingWizardService/internal/service/sessions/models"
	submitBookingUC "github.com/m04kA/BookingWizardService/internal/usecase/submit_booking"
)

const (
	msgMissingSessionID = "отсутствует ID сессии"
	msgMissingToken     = "отсутствует токен доступа"
	msgSessionNotFound  = "сессия не найдена или истекла"
	msgNoSlotSelected   = "выберите время записи перед подтверждением"
	msgWrongStep        = "подтверждение доступно только на шаге выбора даты и времени"
	msgSubmitInFlight   = "запись уже отправляется, дождитесь результата"
)

type Handler struct {
	usecase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(usecase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard-sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("POST /wizard-sessions/{id}/submit - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard-sessions/{id}/submit - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &submitBookingUC.Request{
		SessionID: sessionID,
		Token:     token,
	})
	if err != nil {
		var rejected *submitBookingUC.RejectedError

		switch {
		case errors.Is(err, submitBookingUC.ErrSessionNotFound):
			h.logger.Warn("POST /wizard-sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBookingUC.ErrNoSlotSelected):
			h.logger.Warn("POST /wizard-sessions/{id}/submit - No slot selected: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoSlotSelected)

		case errors.Is(err, submitBookingUC.ErrWrongStep):
			h.logger.Warn("POST /wizard-sessions/{id}/submit - Wrong step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, submitBookingUC.ErrSubmitInFlight):
			h.logger.Warn("POST /wizard-sessions/{id}/submit - Submit in flight: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSubmitInFlight)

		case errors.As(err, &rejected):
			// Отказ бэкенда показывается пользователю дословно
			h.logger.Warn("POST /wizard-sessions/{id}/submit - Booking rejected: session_id=%s, reason=%s",
				sessionID, rejected.Message)
			handlers.RespondConflict(w, rejected.Message)

		default:
			h.logger.Error("POST /wizard-sessions/{id}/submit - Failed: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard-sessions/{id}/submit - Booking confirmed: session_id=%s, appointment_id=%s",
		sessionID, result.AppointmentID)
	handlers.RespondJSON(w, http.StatusCreated, &SubmitBookingResponse{
		AppointmentID: result.AppointmentID,
		Status:        result.Status,
		StartDT:       result.StartDT,
		Session:       sessionModels.FromDomainSession(result.Session),
	})
}
