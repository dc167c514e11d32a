package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
	Slots    SlotsConfig    `toml:"slots"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessConfig бизнес-настройки
// Сервис работает в одной таймзоне (таймзона кабинета)
type BusinessConfig struct {
	Timezone string `toml:"timezone"`
}

// Location возвращает загруженную таймзону кабинета
func (c BusinessConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// SlotsConfig сетки слотов по типам рендез-вус
type SlotsConfig struct {
	Formation GridConfig `toml:"formation"`
	Livrables GridConfig `toml:"livrables"`
}

// GridConfig описание сетки слотов одного типа:
// слоты идут от start до end (не включая end) с шагом duration_minutes
type GridConfig struct {
	Start           string `toml:"start"`
	End             string `toml:"end"`
	DurationMinutes int    `toml:"duration_minutes"`
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

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "cfd-rdv-service"
	}
	if cfg.Business.Timezone == "" {
		cfg.Business.Timezone = "Europe/Paris"
	}
	if cfg.Slots.Formation.Start == "" {
		cfg.Slots.Formation = GridConfig{Start: "09:00", End: "16:00", DurationMinutes: 60}
	}
	if cfg.Slots.Livrables.Start == "" {
		cfg.Slots.Livrables = GridConfig{Start: "09:00", End: "16:00", DurationMinutes: 30}
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if _, err := cfg.Business.Location(); err != nil {
		return fmt.Errorf("config: invalid business.timezone %q: %w", cfg.Business.Timezone, err)
	}
	for _, grid := range []struct {
		name string
		g    GridConfig
	}{
		{"slots.formation", cfg.Slots.Formation},
		{"slots.livrables", cfg.Slots.Livrables},
	} {
		if grid.g.DurationMinutes <= 0 {
			return fmt.Errorf("config: %s.duration_minutes must be positive", grid.name)
		}
		if grid.g.Start >= grid.g.End {
			return fmt.Errorf("config: %s start %q must be before end %q", grid.name, grid.g.Start, grid.g.End)
		}
	}
	return nil
}
