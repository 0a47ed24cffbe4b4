package appointments

import (
	"errors"
	"fmt"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена в бэкенде
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus возвращается при статусе вне словаря статусов записи
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrUnauthorized возвращается, когда бэкенд отклонил токен доступа
	ErrUnauthorized = errors.New("appointment access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// RejectedError отказ бэкенда сменить статус записи
// Содержит дословное сообщение бэкенда для показа пользователю
type RejectedError struct {
	Message string
}

// Error возвращает текст ошибки
func (e *RejectedError) Error() string {
	return fmt.Sprintf("status update rejected: %s", e.Message)
}
