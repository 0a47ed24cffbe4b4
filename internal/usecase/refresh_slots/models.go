package refresh_slots

// Request модель запроса на обновление списка слотов сессии
type Request struct {
	SessionID string // ID сессии мастера
	Token     string // Токен доступа пользователя (передается в провайдер слотов)
}

// Response модель результата выборки слотов
type Response struct {
	// Candidates отфильтрованный список слотов, применённый к сессии
	// Пустой, если результат был отброшен как устаревший
	Candidates []string
	// Applied false, если ответ провайдера устарел и был отброшен
	// (выбор пользователя изменился, пока запрос был в полёте)
	Applied bool
}
