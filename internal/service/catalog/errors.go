package catalog

import "errors"

var (
	// ErrUnauthorized возвращается, когда бэкенд отклонил токен доступа
	ErrUnauthorized = errors.New("catalog access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
