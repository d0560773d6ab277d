package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Resources ResourcesConfig `toml:"resources"`
	Database  DatabaseConfig  `toml:"database"`
	Events    EventsConfig    `toml:"events"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ResourcesConfig откуда брать начальный набор ресурсов
type ResourcesConfig struct {
	Source string   `toml:"source"` // "config" или "database"
	Names  []string `toml:"names"`
}

// DatabaseConfig подключение к каталогу ресурсов
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// EventsConfig настройки публикации событий в Kafka
type EventsConfig struct {
	Enabled        bool     `toml:"enabled"`
	Brokers        []string `toml:"brokers"`
	Topic          string   `toml:"topic"`
	BatchTimeoutMs int      `toml:"batch_timeout_ms"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-resource-scheduler",
		},
		Resources: ResourcesConfig{
			Source: domain.ResourceSourceConfig,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Events: EventsConfig{
			Topic:          "bookings",
			BatchTimeoutMs: 50,
		},
	}
}

// Load читает TOML-файл поверх значений по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := Parse(string(data), cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает TOML-текст в cfg и валидирует результат
func Parse(data string, cfg *Config) error {
	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return fmt.Errorf("config: decode: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}

	return cfg.Validate()
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	switch c.Resources.Source {
	case domain.ResourceSourceConfig:
		for i, name := range c.Resources.Names {
			if len(name) > domain.MaxResourceNameLength {
				return fmt.Errorf("%w: resources.names[%d] is longer than %d", ErrInvalidConfig, i, domain.MaxResourceNameLength)
			}
		}
	case domain.ResourceSourceDatabase:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for database source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: resources.source must be %q or %q", ErrInvalidConfig,
			domain.ResourceSourceConfig, domain.ResourceSourceDatabase)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if c.Events.Enabled {
		if len(c.Events.Brokers) == 0 {
			return fmt.Errorf("%w: events.brokers is required when events are enabled", ErrInvalidConfig)
		}
		if c.Events.Topic == "" {
			return fmt.Errorf("%w: events.topic is required when events are enabled", ErrInvalidConfig)
		}
	}

	return nil
}
