package domain

import (
	"fmt"
	"time"
)

// Selection хранит текущий выбор пользователя в мастере бронирования
// Единственный источник правды для (услуга, специалист, дата, слот)
type Selection struct {
	ServiceID      *string   // ID услуги (шаг 1)
	ProfessionalID *string   // ID специалиста (шаг 1)
	Date           time.Time // Дата бронирования (без времени), по умолчанию сегодня
	Slot           *string   // Выбранный слот (ISO-8601 datetime) из последней выборки кандидатов
}

// IsComplete returns true if service, professional and date are all selected
func (s *Selection) IsComplete() bool {
	return s.ServiceID != nil && s.ProfessionalID != nil && !s.Date.IsZero()
}

// WizardSession represents one booking wizard instance
// Сессия единолично владеет выбором пользователя и списком кандидатов:
// никакой другой компонент их не мутирует
type WizardSession struct {
	ID        string
	Step      WizardStep
	Selection Selection

	// Candidates последний применённый список слотов-кандидатов
	// Список заменяется целиком при каждой выборке, никогда не мержится
	Candidates []string
	// CandidatesKey ключ запроса (услуга|специалист|дата), для которого
	// был применён текущий список кандидатов
	CandidatesKey string
	// Loading true между запуском выборки слотов и применением её результата
	Loading bool

	// Submitting true пока отправка бронирования в полёте
	// Используется только для защиты от повторной отправки
	Submitting bool
	// SubmitError сообщение бэкенда о последнем отклонённом бронировании
	SubmitError *string
	// AppointmentID ID созданной записи (устанавливается при успешной отправке)
	AppointmentID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWizardSession создает новую сессию мастера на первом шаге
// Дата по умолчанию - сегодняшний день
func NewWizardSession(id string, now time.Time) *WizardSession {
	return &WizardSession{
		ID:         id,
		Step:       StepServiceProfessional,
		Selection:  Selection{Date: DateOnly(now)},
		Candidates: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// QueryKey возвращает ключ запроса слотов для текущего выбора
// Пустая строка, если выбор неполный (запрашивать слоты не с чем)
func (s *WizardSession) QueryKey() string {
	if !s.Selection.IsComplete() {
		return ""
	}
	return fmt.Sprintf("%s|%s|%s", *s.Selection.ServiceID, *s.Selection.ProfessionalID, s.Selection.Date.Format(DateFormat))
}

// SetService устанавливает услугу
// Любое изменение услуги сбрасывает выбранный слот и кандидатов
func (s *WizardSession) SetService(id string) {
	if s.Selection.ServiceID != nil && *s.Selection.ServiceID == id {
		return
	}
	s.Selection.ServiceID = &id
	s.invalidateCandidates()
}

// SetProfessional устанавливает специалиста
// Любое изменение специалиста сбрасывает выбранный слот и кандидатов
func (s *WizardSession) SetProfessional(id string) {
	if s.Selection.ProfessionalID != nil && *s.Selection.ProfessionalID == id {
		return
	}
	s.Selection.ProfessionalID = &id
	s.invalidateCandidates()
}

// SetDate устанавливает дату бронирования (время отбрасывается)
// Любое изменение даты сбрасывает выбранный слот и кандидатов
func (s *WizardSession) SetDate(d time.Time) {
	d = DateOnly(d)
	if s.Selection.Date.Equal(d) {
		return
	}
	s.Selection.Date = d
	s.invalidateCandidates()
}

// SetSlot устанавливает выбранный слот
// Принимается только слот из текущего списка кандидатов, иначе no-op:
// UI не должен предлагать невалидные слоты, это защитная проверка
func (s *WizardSession) SetSlot(iso string) bool {
	for _, c := range s.Candidates {
		if c == iso {
			s.Selection.Slot = &iso
			return true
		}
	}
	return false
}

// invalidateCandidates сбрасывает слот и кандидатов после изменения выбора
// Слот, выбранный для другой услуги/специалиста/даты, больше не валиден
func (s *WizardSession) invalidateCandidates() {
	s.Selection.Slot = nil
	s.Candidates = []string{}
	s.CandidatesKey = ""
}

// BeginFetch помечает сессию загружающейся: запущена выборка слотов
func (s *WizardSession) BeginFetch() {
	s.Loading = true
}

// ApplyCandidates применяет результат выборки слотов
// Результат применяется только если ключ запроса всё ещё соответствует
// текущему выбору; устаревший ответ молча отбрасывается (last-request-wins)
func (s *WizardSession) ApplyCandidates(key string, candidates []string) bool {
	if key == "" || key != s.QueryKey() {
		// Отброшенный ответ тоже завершает выборку: флаг загрузки
		// не должен залипать, если новой выборки не последует
		s.Loading = false
		return false
	}
	s.Candidates = append([]string{}, candidates...)
	s.CandidatesKey = key
	s.Loading = false

	// Инвариант: выбранный слот должен входить в последний список кандидатов
	if s.Selection.Slot != nil {
		found := false
		for _, c := range s.Candidates {
			if c == *s.Selection.Slot {
				found = true
				break
			}
		}
		if !found {
			s.Selection.Slot = nil
		}
	}
	return true
}

// CanAdvance returns true if the wizard may advance to the date/time step
func (s *WizardSession) CanAdvance() bool {
	return s.Step == StepServiceProfessional &&
		s.Selection.ServiceID != nil &&
		s.Selection.ProfessionalID != nil
}

// Advance переводит мастер на шаг выбора даты и времени
func (s *WizardSession) Advance() {
	s.Step = StepDateTime
}

// CanGoBack returns true if the wizard may return to the first step
func (s *WizardSession) CanGoBack() bool {
	return s.Step == StepDateTime
}

// Back возвращает мастер на первый шаг и сбрасывает выбранный слот
func (s *WizardSession) Back() {
	s.Step = StepServiceProfessional
	s.Selection.Slot = nil
}

// CanSubmit returns true if the booking may be submitted right now
func (s *WizardSession) CanSubmit() bool {
	return s.Step == StepDateTime && s.Selection.Slot != nil && !s.Submitting
}

// Draft собирает черновик записи из текущего выбора
// Возвращает nil, если какое-то из трёх полей не выбрано
func (s *WizardSession) Draft() *AppointmentDraft {
	if s.Selection.ProfessionalID == nil || s.Selection.ServiceID == nil || s.Selection.Slot == nil {
		return nil
	}
	return &AppointmentDraft{
		ProfessionalID: *s.Selection.ProfessionalID,
		ServiceID:      *s.Selection.ServiceID,
		StartDT:        *s.Selection.Slot,
	}
}

// StartSubmit помечает начало отправки бронирования
func (s *WizardSession) StartSubmit() {
	s.Submitting = true
	s.SubmitError = nil
}

// FinishSubmit завершает успешную отправку: мастер переходит на финальный шаг
func (s *WizardSession) FinishSubmit(appointmentID string) {
	s.Submitting = false
	s.SubmitError = nil
	s.AppointmentID = &appointmentID
	s.Step = StepConfirmation
}

// FailSubmit фиксирует отклонённую отправку
// Мастер остаётся на шаге выбора даты и времени, слот сохраняется для повтора
func (s *WizardSession) FailSubmit(message string) {
	s.Submitting = false
	s.SubmitError = &message
}

// Clone возвращает глубокую копию сессии
// Кандидаты и выбор никогда не разделяются между владельцами
func (s *WizardSession) Clone() *WizardSession {
	clone := *s
	clone.Candidates = append([]string{}, s.Candidates...)
	if s.Selection.ServiceID != nil {
		v := *s.Selection.ServiceID
		clone.Selection.ServiceID = &v
	}
	if s.Selection.ProfessionalID != nil {
		v := *s.Selection.ProfessionalID
		clone.Selection.ProfessionalID = &v
	}
	if s.Selection.Slot != nil {
		v := *s.Selection.Slot
		clone.Selection.Slot = &v
	}
	if s.SubmitError != nil {
		v := *s.SubmitError
		clone.SubmitError = &v
	}
	if s.AppointmentID != nil {
		v := *s.AppointmentID
		clone.AppointmentID = &v
	}
	return &clone
}
