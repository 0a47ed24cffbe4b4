package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/BookingWizardService/internal/api/handlers"
)

type contextKey string

const tokenKey contextKey = "accessToken"

const msgMissingToken = "отсутствует токен доступа"

// Auth извлекает Bearer токен из заголовка Authorization и кладет его
// в контекст запроса. Токен непрозрачен: его проверяет бэкенд записи
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		ctx := context.WithValue(r.Context(), tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetToken возвращает токен доступа из контекста запроса
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
