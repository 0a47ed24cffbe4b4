package submit_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrNoSlotSelected возвращается при отправке без выбранного слота
	// Отправка блокируется локально, сетевой вызов не выполняется
	ErrNoSlotSelected = errors.New("submit_booking: no slot selected")

	// ErrWrongStep возвращается, когда мастер не на шаге выбора даты/времени
	ErrWrongStep = errors.New("submit_booking: wizard is not on the date/time step")

	// ErrSubmitInFlight возвращается, когда предыдущая отправка ещё в полёте
	ErrSubmitInFlight = errors.New("submit_booking: submission already in flight")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// RejectedError отказ бэкенда принять бронирование
// Содержит дословное сообщение бэкенда для показа пользователю;
// мастер остаётся на шаге выбора, слот сохраняется для повтора
type RejectedError struct {
	Message string
}

// Error возвращает текст ошибки
func (e *RejectedError) Error() string {
	return fmt.Sprintf("submit_booking: booking rejected: %s", e.Message)
}
