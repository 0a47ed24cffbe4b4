package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BookingWizardService/internal/api/handlers"
	"github.com/m04kA/BookingWizardService/internal/api/middleware"
	"github.com/m04kA/BookingWizardService/internal/service/appointments"
)

const (
	msgMissingAppointmentID = "отсутствует ID записи"
	msgMissingToken         = "отсутствует токен доступа"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "недопустимый статус записи"
	msgAppointmentNotFound  = "запись не найдена"
	msgUnauthorized         = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("PATCH /appointments/{id}/status - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/status - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), token, appointmentID, req.Status)
	if err != nil {
		var rejected *appointments.RejectedError

		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: appointment_id=%s, status=%s",
				appointmentID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrUnauthorized):
			h.logger.Warn("PATCH /appointments/{id}/status - Unauthorized: appointment_id=%s", appointmentID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.As(err, &rejected):
			// Отказ бэкенда показывается пользователю дословно
			h.logger.Warn("PATCH /appointments/{id}/status - Rejected: appointment_id=%s, reason=%s",
				appointmentID, rejected.Message)
			handlers.RespondConflict(w, rejected.Message)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated: appointment_id=%s, status=%s",
		appointmentID, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
