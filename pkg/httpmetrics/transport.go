package httpmetrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/BookingWizardService/pkg/metrics"
)

// Transport обёртка над http.RoundTripper, собирающая метрики исходящих
// запросов к интеграционным сервисам
type Transport struct {
	target  string
	base    http.RoundTripper
	metrics *metrics.Metrics
}

// Wrap оборачивает transport клиента метриками
// target - имя целевого сервиса для меток
func Wrap(target string, base http.RoundTripper, m *metrics.Metrics) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		target:  target,
		base:    base,
		metrics: m,
	}
}

// RoundTrip выполняет запрос и записывает метрики
// Транспортные ошибки учитываются со статусом "error"
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	t.metrics.IntegrationRequestsTotal.WithLabelValues(t.target, req.Method, status).Inc()
	t.metrics.IntegrationRequestDuration.WithLabelValues(t.target, req.Method).Observe(duration)

	return resp, err
}
