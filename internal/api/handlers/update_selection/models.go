package update_selection

import (
	"fmt"
	"time"

	"github.com/m04kA/BookingWizardService/internal/domain"
	sessionModels "github.com/m04kA/BookingWizardService/internal/service/sessions/models"
	updateSelectionUC "github.com/m04kA/BookingWizardService/internal/usecase/update_selection"
)

// UpdateSelectionRequest запрос на изменение выбора в мастере
// Передаются только изменяемые поля
type UpdateSelectionRequest struct {
	ServiceID      *string `json:"serviceId,omitempty"`
	ProfessionalID *string `json:"professionalId,omitempty"`
	Date           *string `json:"date,omitempty"` // "2025-10-15"
	Slot           *string `json:"slot,omitempty"`
}

// ToUsecaseRequest конвертирует запрос в модель usecase
func (r *UpdateSelectionRequest) ToUsecaseRequest(sessionID, token string) (*updateSelectionUC.Request, error) {
	req := &updateSelectionUC.Request{
		SessionID:      sessionID,
		Token:          token,
		ServiceID:      r.ServiceID,
		ProfessionalID: r.ProfessionalID,
		Slot:           r.Slot,
	}

	if r.Date != nil {
		date, err := time.ParseInLocation(domain.DateFormat, *r.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *r.Date, err)
		}
		req.Date = &date
	}

	return req, nil
}

// UpdateSelectionResponse ответ с состоянием сессии после изменения
type UpdateSelectionResponse struct {
	Session *sessionModels.SessionResponse `json:"session"`
	// SlotAccepted false, если запрошенный слот не входит в текущий
	// список кандидатов и был проигнорирован
	SlotAccepted bool `json:"slotAccepted"`
	// RefreshTriggered true, если изменение запустило новую выборку слотов
	RefreshTriggered bool `json:"refreshTriggered"`
}
