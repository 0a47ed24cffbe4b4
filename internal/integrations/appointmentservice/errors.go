package appointmentservice

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointmentservice client: invalid response")

	// ErrUnauthorized возвращается, когда сервис отклонил токен доступа
	ErrUnauthorized = errors.New("appointmentservice client: unauthorized")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointmentservice client: appointment not found")
)

// RejectedError отказ бэкенда создать или изменить запись:
// конфликт слота, ошибка валидации и т.п.
// Бэкенд - единственный арбитр конфликтов бронирования; его сообщение
// показывается пользователю дословно, без интерпретации
type RejectedError struct {
	StatusCode int
	Message    string
}

// Error возвращает текст ошибки
func (e *RejectedError) Error() string {
	return fmt.Sprintf("appointmentservice client: request rejected (status %d): %s", e.StatusCode, e.Message)
}
