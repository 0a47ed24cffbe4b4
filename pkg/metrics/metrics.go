package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор prometheus-метрик сервиса
type Metrics struct {
	// HTTP метрики (заполняются middleware)
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики мастера бронирования
	SlotFetchesTotal   *prometheus.CounterVec
	StaleDiscardsTotal prometheus.Counter
	SubmitsTotal       *prometheus.CounterVec
	SessionsCreated    prometheus.Counter
	SessionsExpired    prometheus.Counter

	// Метрики интеграционных клиентов
	IntegrationRequestsTotal   *prometheus.CounterVec
	IntegrationRequestDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики в дефолтном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		SlotFetchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_slot_fetches_total",
			Help:        "Total number of slot candidate fetches by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		StaleDiscardsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "wizard_stale_responses_discarded_total",
			Help:        "Total number of stale slot responses discarded",
			ConstLabels: constLabels,
		}),

		SubmitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_submits_total",
			Help:        "Total number of booking submissions by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		SessionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "wizard_sessions_created_total",
			Help:        "Total number of wizard sessions created",
			ConstLabels: constLabels,
		}),

		SessionsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "wizard_sessions_expired_total",
			Help:        "Total number of wizard sessions removed by TTL",
			ConstLabels: constLabels,
		}),

		IntegrationRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "integration_requests_total",
			Help:        "Total number of outgoing integration requests",
			ConstLabels: constLabels,
		}, []string{"target", "method", "status"}),

		IntegrationRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "integration_request_duration_seconds",
			Help:        "Outgoing integration request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "method"}),
	}
}

// IncSlotFetch инкрементирует счётчик выборок слотов
// result: ok | error | stale
func (m *Metrics) IncSlotFetch(result string) {
	m.SlotFetchesTotal.WithLabelValues(result).Inc()
}

// IncStaleDiscard инкрементирует счётчик отброшенных устаревших ответов
func (m *Metrics) IncStaleDiscard() {
	m.StaleDiscardsTotal.Inc()
}

// IncSubmit инкрементирует счётчик отправок бронирований
// result: accepted | rejected | failed
func (m *Metrics) IncSubmit(result string) {
	m.SubmitsTotal.WithLabelValues(result).Inc()
}

// IncSessionCreated инкрементирует счётчик созданных сессий
func (m *Metrics) IncSessionCreated() {
	m.SessionsCreated.Inc()
}

// AddSessionsExpired инкрементирует счётчик удалённых по TTL сессий
func (m *Metrics) AddSessionsExpired(n int) {
	m.SessionsExpired.Add(float64(n))
}

// Nop заглушка метрик: используется, когда сбор метрик выключен в конфигурации
type Nop struct{}

func (Nop) IncSlotFetch(string)     {}
func (Nop) IncStaleDiscard()        {}
func (Nop) IncSubmit(string)        {}
func (Nop) IncSessionCreated()      {}
func (Nop) AddSessionsExpired(int)  {}
