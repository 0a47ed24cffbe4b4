package models

import "github.com/m04kA/BookingWizardService/internal/integrations/appointmentservice"

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID             string  `json:"id"`
	ProfessionalID string  `json:"professionalId"`
	ServiceID      string  `json:"serviceId"`
	ClientName     *string `json:"clientName,omitempty"`
	StartDT        string  `json:"startDt"`
	Status         string  `json:"status"`
}

// FromIntegration конвертирует ответ бэкенда в response
func FromIntegration(a *appointmentservice.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             a.ID,
		ProfessionalID: a.ProfessionalID,
		ServiceID:      a.ServiceID,
		ClientName:     a.ClientName,
		StartDT:        a.StartDT,
		Status:         a.Status,
	}
}
