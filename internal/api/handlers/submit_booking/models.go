package submit_booking

import (
	sessionModels "github.com/m04kA/BookingWizardService/internal/service/sessions/models"
)

// SubmitBookingResponse ответ с результатом подтверждения записи
type SubmitBookingResponse struct {
	AppointmentID string                         `json:"appointmentId"`
	Status        string                         `json:"status"`
	StartDT       string                         `json:"startDt"`
	Session       *sessionModels.SessionResponse `json:"session"`
}
