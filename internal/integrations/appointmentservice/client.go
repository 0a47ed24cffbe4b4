package appointmentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/BookingWizardService/internal/domain"
)

// Client клиент для работы с write-стороной бэкенда записи:
// создание записей и смена их статусов
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

// NewClient создает новый экземпляр клиента AppointmentService
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

// CreateAppointment отправляет черновик записи в бэкенд
// Бэкенд авторитетно принимает или отклоняет бронирование; отказ
// (занятый слот, ошибка валидации) возвращается как *RejectedError
// с дословным сообщением для пользователя
func (c *Client) CreateAppointment(ctx context.Context, token string, draft *domain.AppointmentDraft) (*Appointment, error) {
	reqBody := CreateAppointmentRequest{
		ProfessionalID: draft.ProfessionalID,
		ServiceID:      draft.ServiceID,
		StartDT:        draft.StartDT,
	}

	reqURL := fmt.Sprintf("%s/appointments/", c.baseURL)

	var appointment Appointment
	if err := c.doJSON(ctx, http.MethodPost, reqURL, token, reqBody, &appointment, http.StatusCreated, http.StatusOK); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// UpdateStatus переводит запись в новый статус
// Словарь статусов: PENDING_PAYMENT, CONFIRMED, CANCELED, COMPLETED
func (c *Client) UpdateStatus(ctx context.Context, token, appointmentID string, status domain.AppointmentStatus) (*Appointment, error) {
	reqURL := fmt.Sprintf("%s/appointments/%s/status", c.baseURL, appointmentID)

	var appointment Appointment
	if err := c.doJSON(ctx, http.MethodPatch, reqURL, token, UpdateStatusRequest{Status: string(status)}, &appointment, http.StatusOK); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// doJSON выполняет запрос с JSON телом и Bearer токеном
func (c *Client) doJSON(ctx context.Context, method, reqURL, token string, in, out interface{}, okStatuses ...int) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("AppointmentService: request %s %s failed: %v", method, reqURL, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	for _, status := range okStatuses {
		if resp.StatusCode == status {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
			}
			return nil
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		c.log.Warn("AppointmentService: access denied for %s %s, status=%d", method, reqURL, resp.StatusCode)
		return ErrUnauthorized
	case http.StatusNotFound:
		c.log.Warn("AppointmentService: not found for %s %s", method, reqURL)
		return ErrAppointmentNotFound
	}

	// 4xx трактуем как отказ с человекочитаемым сообщением из detail
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		detail := readDetail(resp.Body)
		c.log.Warn("AppointmentService: request %s %s rejected, status=%d: %s",
			method, reqURL, resp.StatusCode, detail)
		return &RejectedError{
			StatusCode: resp.StatusCode,
			Message:    detail,
		}
	}

	body, _ = io.ReadAll(resp.Body)
	c.log.Error("AppointmentService: unexpected status %d from %s %s: %s",
		resp.StatusCode, method, reqURL, string(body))
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}

// readDetail извлекает поле detail из тела ошибки
// Если тело не парсится, возвращает общее сообщение
func readDetail(r io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(r).Decode(&errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	return "booking failed due to a server error"
}
