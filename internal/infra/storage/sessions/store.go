package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/BookingWizardService/internal/domain"
)

// Store in-memory хранилище сессий мастера бронирования
// Сессии эфемерны по построению: живут только на время бронирования
// и удаляются по TTL, персистентность не нужна
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.WizardSession
	ttl      time.Duration
	now      func() time.Time
}

// NewStore создает хранилище с указанным TTL неактивных сессий
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*domain.WizardSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create сохраняет новую сессию
func (s *Store) Create(_ context.Context, session *domain.WizardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return ErrSessionExists
	}

	// TTL отсчитывается часами хранилища: момент создания - это активность
	clone := session.Clone()
	clone.UpdatedAt = s.now()
	s.sessions[session.ID] = clone
	return nil
}

// Get возвращает копию сессии по ID
// Возвращается именно копия: кандидаты и выбор не должны разделяться
// между хранилищем и вызывающим кодом
func (s *Store) Get(_ context.Context, id string) (*domain.WizardSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok || s.expired(session) {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

// Mutate атомарно изменяет сессию под блокировкой хранилища
// Если fn возвращает ошибку, изменения не сохраняются
// Возвращает копию сессии после изменения
func (s *Store) Mutate(_ context.Context, id string, fn func(session *domain.WizardSession) error) (*domain.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || s.expired(session) {
		return nil, ErrSessionNotFound
	}

	// fn работает с копией: при ошибке оригинал остаётся нетронутым
	draft := session.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}

	draft.UpdatedAt = s.now()
	s.sessions[id] = draft
	return draft.Clone(), nil
}

// Delete удаляет сессию
// Удаление несуществующей сессии не является ошибкой
func (s *Store) Delete(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// DeleteExpired удаляет истекшие сессии и возвращает их количество
func (s *Store) DeleteExpired(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len возвращает текущее количество сессий (включая истекшие, но ещё не удалённые)
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// expired проверяет, истёк ли TTL сессии с момента последней активности
func (s *Store) expired(session *domain.WizardSession) bool {
	if s.ttl <= 0 {
		return false
	}
	return s.now().Sub(session.UpdatedAt) > s.ttl
}
