package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	advanceStepHandler "github.com/m04kA/BookingWizardService/internal/api/handlers/advance_step"
	createSessionHandler "github.com/m04kA/BookingWizardService/internal/api/handlers/create_session"
	getCatalogHandler "github.com/m04kA/BookingWizardService/internal/api/handlers/get_catalog"
	getSessionHandler "github.com/m04kA/BookingWizardService/internal/api/handlers/get_session"
	getSlotsHandler "github.com/m04kA/BookingWizardService/internal/api/handlers/get_slots"
	stepBackHandler "github.com/m04kA/BookingWizardService/internal/api/handlers/step_back"
	submitBookingHandler "github.com/m04kA/BookingWizardService/internal/api/handlers/submit_booking"
	updateStatusHandler "github.com/m04kA/BookingWizardService/internal/api/handlers/update_appointment_status"
	updateSelectionHandler "github.com/m04kA/BookingWizardService/internal/api/handlers/update_selection"
	"github.com/m04kA/BookingWizardService/internal/api/middleware"
	"github.com/m04kA/BookingWizardService/internal/config"
	sessionStore "github.com/m04kA/BookingWizardService/internal/infra/storage/sessions"
	appointmentServiceClient "github.com/m04kA/BookingWizardService/internal/integrations/appointmentservice"
	scheduleServiceClient "github.com/m04kA/BookingWizardService/internal/integrations/scheduleservice"
	appointmentsService "github.com/m04kA/BookingWizardService/internal/service/appointments"
	catalogService "github.com/m04kA/BookingWizardService/internal/service/catalog"
	sessionsService "github.com/m04kA/BookingWizardService/internal/service/sessions"
	refreshSlotsUC "github.com/m04kA/BookingWizardService/internal/usecase/refresh_slots"
	submitBookingUC "github.com/m04kA/BookingWizardService/internal/usecase/submit_booking"
	updateSelectionUC "github.com/m04kA/BookingWizardService/internal/usecase/update_selection"
	"github.com/m04kA/BookingWizardService/pkg/httpmetrics"
	"github.com/m04kA/BookingWizardService/pkg/logger"
	"github.com/m04kA/BookingWizardService/pkg/metrics"
)

// metricsSink подмножество метрик мастера, используемое при сборке сервиса
// Реализуется и настоящим коллектором, и заглушкой metrics.Nop
type metricsSink interface {
	IncSlotFetch(result string)
	IncStaleDiscard()
	IncSubmit(result string)
	IncSessionCreated()
	AddSessionsExpired(n int)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BookingWizardService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var sink metricsSink = metrics.Nop{}

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		sink = metricsCollector
		log.Info("Prometheus metrics enabled, service_name=%s", cfg.Metrics.ServiceName)
	} else {
		log.Info("Prometheus metrics disabled")
	}

	// Инициализируем интеграционных клиентов
	// При включённых метриках исходящие запросы заворачиваются в
	// измеряющий RoundTripper
	scheduleTimeout := time.Duration(cfg.ScheduleService.Timeout) * time.Second
	appointmentTimeout := time.Duration(cfg.AppointmentService.Timeout) * time.Second

	var scheduleClient *scheduleServiceClient.Client
	var appointmentClient *appointmentServiceClient.Client

	if cfg.Metrics.Enabled {
		scheduleClient = scheduleServiceClient.NewClientWithTransport(
			cfg.ScheduleService.URL,
			scheduleTimeout,
			httpmetrics.Wrap("schedule-service", http.DefaultTransport, metricsCollector),
			log,
		)
		appointmentClient = appointmentServiceClient.NewClientWithTransport(
			cfg.AppointmentService.URL,
			appointmentTimeout,
			httpmetrics.Wrap("appointment-service", http.DefaultTransport, metricsCollector),
			log,
		)
	} else {
		scheduleClient = scheduleServiceClient.NewClient(cfg.ScheduleService.URL, scheduleTimeout, log)
		appointmentClient = appointmentServiceClient.NewClient(cfg.AppointmentService.URL, appointmentTimeout, log)
	}
	log.Info("Integration clients initialized: schedule=%s, appointment=%s",
		cfg.ScheduleService.URL, cfg.AppointmentService.URL)

	// Инициализируем хранилище сессий
	sessionTTL := time.Duration(cfg.Sessions.TTLMinutes) * time.Minute
	store := sessionStore.NewStore(sessionTTL)
	log.Info("Session store initialized, ttl=%s", sessionTTL)

	// Фоновая очистка истёкших сессий
	stopJanitorCh := make(chan struct{})
	go func() {
		interval := time.Duration(cfg.Sessions.CleanupIntervalMinutes) * time.Minute
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := store.DeleteExpired(context.Background()); removed > 0 {
					sink.AddSessionsExpired(removed)
					log.Info("Session janitor removed %d expired sessions", removed)
				}
			case <-stopJanitorCh:
				return
			}
		}
	}()

	// Инициализируем сервисы
	sessionsSvc := sessionsService.NewService(store, sink, log)
	catalogSvc := catalogService.NewService(scheduleClient, log)
	appointmentsSvc := appointmentsService.NewService(appointmentClient, log)

	// Инициализируем usecases
	refreshSlotsUseCase := refreshSlotsUC.NewUseCase(
		store,
		scheduleClient,
		sink,
		cfg.Wizard.LeadTimeMinutes,
		log,
	)

	updateSelectionUseCase := updateSelectionUC.NewUseCase(
		store,
		refreshSlotsUseCase,
		log,
	)

	submitBookingUseCase := submitBookingUC.NewUseCase(
		store,
		appointmentClient,
		sink,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessionsSvc, log)
	getSession := getSessionHandler.NewHandler(sessionsSvc, log)
	advanceStep := advanceStepHandler.NewHandler(sessionsSvc, log)
	stepBack := stepBackHandler.NewHandler(sessionsSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(updateSelectionUseCase, log)
	getSlots := getSlotsHandler.NewHandler(refreshSlotsUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	// Все операции требуют Bearer токен: он передаётся дальше в бэкенды
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Сессии мастера бронирования ---
	api.HandleFunc("/wizard-sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard-sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard-sessions/{sessionId}/selection", updateSelection.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/wizard-sessions/{sessionId}/advance", advanceStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard-sessions/{sessionId}/back", stepBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard-sessions/{sessionId}/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard-sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Справочники для первого шага ---
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// --- Управление статусами записей ---
	api.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновую очистку сессий
	close(stopJanitorCh)
	log.Info("Session janitor stopped")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
