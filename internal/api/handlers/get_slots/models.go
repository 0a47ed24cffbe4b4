package get_slots

// GetSlotsResponse ответ со списком доступных слотов
type GetSlotsResponse struct {
	Slots []string `json:"slots"`
	// Applied false, если результат выборки устарел (выбор изменился,
	// пока запрос был в полёте) и к сессии не применялся
	Applied bool `json:"applied"`
}
