package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/BookingWizardService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server             ServerConfig      `toml:"server"`
	Logs               LogsConfig        `toml:"logs"`
	Metrics            MetricsConfig     `toml:"metrics"`
	ScheduleService    IntegrationConfig `toml:"schedule_service"`
	AppointmentService IntegrationConfig `toml:"appointment_service"`
	Wizard             WizardConfig      `toml:"wizard"`
	Sessions           SessionsConfig    `toml:"sessions"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки интеграционного клиента
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// WizardConfig настройки мастера бронирования
type WizardConfig struct {
	// LeadTimeMinutes минимальное время до начала слота для бронирования на сегодня
	LeadTimeMinutes int `toml:"lead_time_minutes"`
}

// SessionsConfig настройки хранилища сессий
type SessionsConfig struct {
	TTLMinutes             int `toml:"ttl_minutes"`
	CleanupIntervalMinutes int `toml:"cleanup_interval_minutes"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет дефолтные значения для незаполненных полей
func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8086
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "booking-wizard-service"
	}
	if cfg.ScheduleService.Timeout == 0 {
		cfg.ScheduleService.Timeout = 5
	}
	if cfg.AppointmentService.Timeout == 0 {
		cfg.AppointmentService.Timeout = 10
	}
	if cfg.Wizard.LeadTimeMinutes == 0 {
		cfg.Wizard.LeadTimeMinutes = domain.DefaultLeadTimeMinutes
	}
	if cfg.Sessions.TTLMinutes == 0 {
		cfg.Sessions.TTLMinutes = domain.DefaultSessionTTLMinutes
	}
	if cfg.Sessions.CleanupIntervalMinutes == 0 {
		cfg.Sessions.CleanupIntervalMinutes = 5
	}
}

// validate проверяет корректность конфигурации
func validate(cfg *Config) error {
	if cfg.ScheduleService.URL == "" {
		return fmt.Errorf("config: schedule_service.url is required")
	}
	if cfg.AppointmentService.URL == "" {
		return fmt.Errorf("config: appointment_service.url is required")
	}
	if cfg.Wizard.LeadTimeMinutes < domain.MinLeadTimeMinutes || cfg.Wizard.LeadTimeMinutes > domain.MaxLeadTimeMinutes {
		return fmt.Errorf("config: wizard.lead_time_minutes must be between %d and %d",
			domain.MinLeadTimeMinutes, domain.MaxLeadTimeMinutes)
	}
	return nil
}
