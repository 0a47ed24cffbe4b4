package update_selection

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("update_selection: session not found")

	// ErrWizardFinished возвращается при попытке изменить выбор после подтверждения
	ErrWizardFinished = errors.New("update_selection: wizard already finished")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_selection: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_selection: internal error")
)
