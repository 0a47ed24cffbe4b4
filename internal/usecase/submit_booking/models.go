package submit_booking

import "github.com/m04kA/BookingWizardService/internal/domain"

// Request модель запроса на отправку бронирования
type Request struct {
	SessionID string // ID сессии мастера
	Token     string // Токен доступа пользователя
}

// Response модель ответа с результатом бронирования
type Response struct {
	// AppointmentID ID созданной записи
	AppointmentID string
	// Status статус созданной записи из словаря статусов бэкенда
	Status string
	// StartDT подтверждённое время начала (ISO-8601)
	StartDT string
	// Session состояние сессии после подтверждения (шаг confirmation)
	Session *domain.WizardSession
}
