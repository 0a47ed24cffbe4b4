package refresh_slots

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("refresh_slots: session not found")

	// ErrNotReady возвращается, когда сессия не на шаге выбора даты/времени
	// или тройка (услуга, специалист, дата) ещё не выбрана целиком
	ErrNotReady = errors.New("refresh_slots: selection is not ready for slot fetch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("refresh_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("refresh_slots: internal error")
)
