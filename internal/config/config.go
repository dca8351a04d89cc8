package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Engine   EngineConfig   `toml:"engine"`
	GiftUp   GiftUpConfig   `toml:"giftup"`
}

// ServerConfig настройки HTTP сервера
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

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EngineConfig параметры расчёта доступности
// Рабочая сетка таймлайна задается конфигурацией, а не константами в коде
type EngineConfig struct {
	OpenTime                 string `toml:"open_time"`
	CloseTime                string `toml:"close_time"`
	SlotStepMinutes          int    `toml:"slot_step_minutes"`
	FixedSlotDurationMinutes int    `toml:"fixed_slot_duration_minutes"`
	FlexiStepMinutes         int    `toml:"flexi_step_minutes"`
}

// GiftUpConfig настройки клиента сервиса подарочных карт
type GiftUpConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.File == "" {
		c.Logs.File = "venue-service.log"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-venue-service"
	}
	if c.Engine.OpenTime == "" {
		c.Engine.OpenTime = "08:00"
	}
	if c.Engine.CloseTime == "" {
		c.Engine.CloseTime = "23:00"
	}
	if c.Engine.SlotStepMinutes == 0 {
		c.Engine.SlotStepMinutes = 15
	}
	if c.Engine.FixedSlotDurationMinutes == 0 {
		c.Engine.FixedSlotDurationMinutes = 60
	}
	if c.Engine.FlexiStepMinutes == 0 {
		c.Engine.FlexiStepMinutes = 15
	}
	if c.GiftUp.Timeout == 0 {
		c.GiftUp.Timeout = 5
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("config: database.port is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Engine.SlotStepMinutes < 0 || c.Engine.FixedSlotDurationMinutes < 0 {
		return fmt.Errorf("config: engine durations must be positive")
	}
	if c.Engine.FixedSlotDurationMinutes%c.Engine.SlotStepMinutes != 0 {
		return fmt.Errorf("config: engine.fixed_slot_duration_minutes must be a multiple of slot_step_minutes")
	}
	return nil
}
