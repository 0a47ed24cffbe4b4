package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrSessionExists возвращается при попытке создать сессию с занятым ID
	ErrSessionExists = errors.New("wizard session already exists")
)
