package models

import (
	"time"

	"github.com/m04kA/BookingWizardService/internal/domain"
)

// Response модели

// SelectionResponse текущий выбор пользователя в мастере
type SelectionResponse struct {
	ServiceID      *string `json:"serviceId,omitempty"`
	ProfessionalID *string `json:"professionalId,omitempty"`
	Date           string  `json:"date"` // "2025-10-15"
	Slot           *string `json:"slot,omitempty"`
}

// SessionResponse ответ с состоянием сессии мастера
type SessionResponse struct {
	SessionID     string            `json:"sessionId"`
	Step          string            `json:"step"`
	Selection     SelectionResponse `json:"selection"`
	Slots         []string          `json:"slots"`
	Loading       bool              `json:"loading"`
	Submitting    bool              `json:"submitting"`
	SubmitError   *string           `json:"submitError,omitempty"`
	AppointmentID *string           `json:"appointmentId,omitempty"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
}

// FromDomainSession конвертирует domain сессию в response
func FromDomainSession(session *domain.WizardSession) *SessionResponse {
	slots := session.Candidates
	if slots == nil {
		slots = []string{}
	}

	return &SessionResponse{
		SessionID: session.ID,
		Step:      string(session.Step),
		Selection: SelectionResponse{
			ServiceID:      session.Selection.ServiceID,
			ProfessionalID: session.Selection.ProfessionalID,
			Date:           session.Selection.Date.Format(domain.DateFormat),
			Slot:           session.Selection.Slot,
		},
		Slots:         slots,
		Loading:       session.Loading,
		Submitting:    session.Submitting,
		SubmitError:   session.SubmitError,
		AppointmentID: session.AppointmentID,
		CreatedAt:     session.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     session.UpdatedAt.Format(time.RFC3339),
	}
}
