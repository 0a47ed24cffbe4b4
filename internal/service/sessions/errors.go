package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrCannotAdvance возвращается при попытке перейти дальше без выбранных
	// услуги и мастера либо не с первого шага
	ErrCannotAdvance = errors.New("wizard cannot advance from current state")

	// ErrCannotGoBack возвращается при попытке вернуться назад не с шага
	// выбора даты и времени
	ErrCannotGoBack = errors.New("wizard cannot go back from current step")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
