package scheduleservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// recordLogger фиксирует количество вызовов по уровням
type recordLogger struct {
	infos, warns, errors int
}

func (l *recordLogger) Info(string, ...interface{})  { l.infos++ }
func (l *recordLogger) Warn(string, ...interface{})  { l.warns++ }
func (l *recordLogger) Error(string, ...interface{}) { l.errors++ }

func TestClient_GetAvailableSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/availability/", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "pro-1", r.URL.Query().Get("professional_id"))
		assert.Equal(t, "svc-1", r.URL.Query().Get("service_id"))
		assert.Equal(t, "2024-06-05", r.URL.Query().Get("target_date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["2024-06-05T14:00", "2024-06-05T15:00"]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	slots, err := client.GetAvailableSlots(context.Background(), "token-1", "pro-1", "svc-1",
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-05T14:00", "2024-06-05T15:00"}, slots)
}

func TestClient_GetAvailableSlots_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	slots, err := client.GetAvailableSlots(context.Background(), "token-1", "pro-1", "svc-1",
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestClient_GetAvailableSlots_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.GetAvailableSlots(context.Background(), "token-1", "pro-1", "svc-1",
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetAvailableSlots_ServerErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"detail":"schedule backend is down"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.GetAvailableSlots(context.Background(), "token-1", "pro-1", "svc-1",
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrInvalidResponse)
	// Detail из тела ошибки попадает в сообщение
	assert.Contains(t, err.Error(), "schedule backend is down")
}

func TestClient_GetAvailableSlots_TransportError_Logged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // соединение сразу отклоняется

	log := &recordLogger{}
	client := NewClient(srv.URL, time.Second, log)

	_, err := client.GetAvailableSlots(context.Background(), "token-1", "pro-1", "svc-1",
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, log.errors)
}

func TestClient_GetAvailableSlots_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.GetAvailableSlots(context.Background(), "bad-token", "pro-1", "svc-1",
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ListServicesAndProfessionals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/service/list":
			_, _ = w.Write([]byte(`[{"id":"svc-1","name":"Corte","base_price":50,"base_duration_minutes":30}]`))
		case "/professional/list":
			_, _ = w.Write([]byte(`[{"id":"pro-1","email":"ana@example.com","name":"Ana","is_active":true}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	services, err := client.ListServices(context.Background(), "token-1")
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Corte", services[0].Name)
	assert.Equal(t, 50.0, services[0].BasePrice)

	professionals, err := client.ListProfessionals(context.Background(), "token-1")
	require.NoError(t, err)
	require.Len(t, professionals, 1)
	assert.Equal(t, "Ana", professionals[0].Name)
	assert.True(t, professionals[0].IsActive)
}
