package scheduleservice

// Service модель услуги из каталога бэкенда
type Service struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         *string `json:"description,omitempty"`
	BasePrice           float64 `json:"base_price"`
	BaseDurationMinutes int     `json:"base_duration_minutes"`
}

// Professional модель специалиста из каталога бэкенда
type Professional struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// ErrorResponse модель ошибки бэкенда
type ErrorResponse struct {
	Detail string `json:"detail"`
}
