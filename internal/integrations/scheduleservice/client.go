package scheduleservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/BookingWizardService/internal/domain"
)

// Client клиент для работы с read-стороной бэкенда записи:
// доступные слоты и каталог услуг/специалистов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает новый экземпляр клиента ScheduleService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NewClientWithTransport создает клиент с кастомным transport
// Используется для оборачивания метриками
func NewClientWithTransport(baseURL string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// GetAvailableSlots получает список доступных слотов для тройки
// (специалист, услуга, дата)
// Ответ - упорядоченный список ISO-8601 datetime строк, может быть пустым
func (c *Client) GetAvailableSlots(ctx context.Context, token, professionalID, serviceID string, date time.Time) ([]string, error) {
	q := url.Values{}
	q.Set("professional_id", professionalID)
	q.Set("service_id", serviceID)
	q.Set("target_date", date.Format(domain.DateFormat))

	reqURL := fmt.Sprintf("%s/availability/?%s", c.baseURL, q.Encode())

	var slots []string
	if err := c.getJSON(ctx, token, reqURL, &slots); err != nil {
		return nil, err
	}

	// Гарантируем не-nil список: пустой ответ - это валидные "нет слотов"
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}

// ListServices получает список услуг заведения
func (c *Client) ListServices(ctx context.Context, token string) ([]Service, error) {
	reqURL := fmt.Sprintf("%s/service/list", c.baseURL)

	var services []Service
	if err := c.getJSON(ctx, token, reqURL, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// ListProfessionals получает список специалистов заведения
func (c *Client) ListProfessionals(ctx context.Context, token string) ([]Professional, error) {
	reqURL := fmt.Sprintf("%s/professional/list", c.baseURL)

	var professionals []Professional
	if err := c.getJSON(ctx, token, reqURL, &professionals); err != nil {
		return nil, err
	}
	return professionals, nil
}

// getJSON выполняет GET запрос с Bearer токеном и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, token, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("ScheduleService: request to %s failed: %v", reqURL, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		c.log.Warn("ScheduleService: access denied for %s, status=%d", reqURL, resp.StatusCode)
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		detail := string(body)
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
			detail = errResp.Detail
		}
		c.log.Error("ScheduleService: unexpected status %d from %s: %s", resp.StatusCode, reqURL, detail)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, detail)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
