package models

import "github.com/m04kA/BookingWizardService/internal/integrations/scheduleservice"

// Response модели

// ServiceResponse услуга для первого шага мастера
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ProfessionalResponse специалист для первого шага мастера
type ProfessionalResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CatalogResponse ответ со справочниками для первого шага мастера
type CatalogResponse struct {
	Services      []ServiceResponse      `json:"services"`
	Professionals []ProfessionalResponse `json:"professionals"`
}

// FromIntegration собирает каталог из ответов бэкенда
// Неактивные специалисты в выбор не попадают
func FromIntegration(services []scheduleservice.Service, professionals []scheduleservice.Professional) *CatalogResponse {
	resp := &CatalogResponse{
		Services:      make([]ServiceResponse, 0, len(services)),
		Professionals: make([]ProfessionalResponse, 0, len(professionals)),
	}

	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.BasePrice,
			DurationMinutes: s.BaseDurationMinutes,
		})
	}

	for _, p := range professionals {
		if !p.IsActive {
			continue
		}
		resp.Professionals = append(resp.Professionals, ProfessionalResponse{
			ID:    p.ID,
			Name:  p.Name,
			Email: p.Email,
		})
	}

	return resp
}
