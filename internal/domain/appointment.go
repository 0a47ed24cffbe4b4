package domain

// AppointmentStatus represents the status of an appointment
// Словарь статусов общий для всего бэкенда записи
type AppointmentStatus string

const (
	StatusPendingPayment AppointmentStatus = "PENDING_PAYMENT"
	StatusConfirmed      AppointmentStatus = "CONFIRMED"
	StatusCanceled       AppointmentStatus = "CANCELED"
	StatusCompleted      AppointmentStatus = "COMPLETED"
)

// IsValid returns true if the status belongs to the shared status vocabulary
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	default:
		return false
	}
}

// AllStatuses список всех статусов записи
// Используется в валидации и сообщениях об ошибках
var AllStatuses = []AppointmentStatus{
	StatusPendingPayment,
	StatusConfirmed,
	StatusCanceled,
	StatusCompleted,
}

// AppointmentDraft черновик записи, собранный из выбора пользователя
// Отправляется в бэкенд только когда выбраны все три поля
// Каноничная форма без establishment_id: принадлежность к заведению
// бэкенд выводит из специалиста и услуги
type AppointmentDraft struct {
	ProfessionalID string // ID специалиста
	ServiceID      string // ID услуги
	StartDT        string // Выбранный слот (ISO-8601 datetime)
}
