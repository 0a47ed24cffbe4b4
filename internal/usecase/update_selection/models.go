package update_selection

import (
	"time"

	"github.com/m04kA/BookingWizardService/internal/domain"
)

// Request модель запроса на изменение выбора в сессии
// Заполняются только изменяемые поля; nil - поле не трогаем
type Request struct {
	SessionID string // ID сессии мастера
	Token     string // Токен доступа пользователя (для последующей выборки слотов)

	ServiceID      *string    // Новая услуга
	ProfessionalID *string    // Новый специалист
	Date           *time.Time // Новая дата бронирования
	Slot           *string    // Новый выбранный слот (из текущих кандидатов)
}

// HasUpstreamChange returns true if the request changes service, professional or date
// Такие изменения инвалидируют слот и требуют новой выборки кандидатов
func (r *Request) HasUpstreamChange() bool {
	return r.ServiceID != nil || r.ProfessionalID != nil || r.Date != nil
}

// IsEmpty returns true if the request changes nothing
func (r *Request) IsEmpty() bool {
	return !r.HasUpstreamChange() && r.Slot == nil
}

// Response модель ответа с состоянием сессии после изменения
type Response struct {
	Session *domain.WizardSession
	// SlotAccepted false, если запрошенный слот не входит в текущий список
	// кандидатов и был проигнорирован
	SlotAccepted bool
	// RefreshTriggered true, если изменение запустило новую выборку слотов
	RefreshTriggered bool
}
