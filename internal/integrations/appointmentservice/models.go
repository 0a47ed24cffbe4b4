package appointmentservice

// CreateAppointmentRequest тело запроса на создание записи
// Каноничная форма без establishment_id: заведение бэкенд выводит
// из специалиста и услуги
type CreateAppointmentRequest struct {
	ProfessionalID string `json:"professional_id"`
	ServiceID      string `json:"service_id"`
	StartDT        string `json:"start_dt"`
}

// UpdateStatusRequest тело запроса на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Appointment модель созданной записи из бэкенда
// Для мастера бронирования важен только факт успеха и ID,
// остальные поля прозрачно отдаются наружу
type Appointment struct {
	ID             string  `json:"id"`
	ProfessionalID string  `json:"professional_id"`
	ServiceID      string  `json:"service_id"`
	ClientName     *string `json:"client_name,omitempty"`
	StartDT        string  `json:"start_dt"`
	Status         string  `json:"status"`
}

// ErrorResponse модель ошибки бэкенда
type ErrorResponse struct {
	Detail string `json:"detail"`
}
