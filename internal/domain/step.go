package domain

// WizardStep represents the current step of the booking wizard
type WizardStep string

const (
	// StepServiceProfessional шаг 1: выбор услуги и специалиста
	StepServiceProfessional WizardStep = "service_professional"
	// StepDateTime шаг 2: выбор даты и временного слота
	StepDateTime WizardStep = "date_time"
	// StepConfirmation финальный шаг: бронирование подтверждено
	// Обратного перехода из этого шага нет
	StepConfirmation WizardStep = "confirmation"
)

// IsValid returns true if the step is one of the known wizard steps
func (s WizardStep) IsValid() bool {
	switch s {
	case StepServiceProfessional, StepDateTime, StepConfirmation:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transitions are possible from this step
func (s WizardStep) IsTerminal() bool {
	return s == StepConfirmation
}
