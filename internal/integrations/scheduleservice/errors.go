package scheduleservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")

	// ErrUnauthorized возвращается, когда сервис отклонил токен доступа
	ErrUnauthorized = errors.New("scheduleservice client: unauthorized")
)
