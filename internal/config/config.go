package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig ошибка чтения или разбора файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig некорректные значения в конфигурации
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Admin    AdminConfig    `toml:"admin"`
	Session  SessionConfig  `toml:"session"`
	Holidays HolidaysConfig `toml:"holidays"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры записи
type BookingConfig struct {
	// MinBookingNoticeMinutes за сколько минут до начала слот перестаёт предлагаться на сегодня
	MinBookingNoticeMinutes int    `toml:"min_booking_notice_minutes"`
	Timezone                string `toml:"timezone"`
}

// Location часовой пояс барбершопа
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(b.Timezone)
}

// AdminConfig доступ в панель администратора
type AdminConfig struct {
	// PasswordHash bcrypt-хэш пароля, генерируется командой hash-password
	PasswordHash string `toml:"password_hash"`
}

// SessionConfig ключи securecookie в base64
type SessionConfig struct {
	HashKey  string `toml:"hash_key"`
	BlockKey string `toml:"block_key"`
	Secure   bool   `toml:"secure"`
	MaxAge   int    `toml:"max_age"` // секунды
}

// Keys декодирует ключи сессии
func (s SessionConfig) Keys() (hashKey, blockKey []byte, err error) {
	hashKey, err = base64.StdEncoding.DecodeString(s.HashKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: session.hash_key: %v", ErrInvalidConfig, err)
	}
	if s.BlockKey == "" {
		return hashKey, nil, nil
	}
	blockKey, err = base64.StdEncoding.DecodeString(s.BlockKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: session.block_key: %v", ErrInvalidConfig, err)
	}
	return hashKey, blockKey, nil
}

// HolidaysConfig клиент календаря праздников
type HolidaysConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barber-booking",
		},
		Booking: BookingConfig{
			Timezone: "UTC",
		},
		Session: SessionConfig{
			MaxAge: 86400,
		},
		Holidays: HolidaysConfig{
			Timeout: 5,
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Booking.MinBookingNoticeMinutes < 0 {
		return fmt.Errorf("%w: booking.min_booking_notice_minutes must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Session.HashKey == "" {
		return fmt.Errorf("%w: session.hash_key is required", ErrInvalidConfig)
	}
	hashKey, blockKey, err := c.Session.Keys()
	if err != nil {
		return err
	}
	if len(hashKey) < 32 {
		return fmt.Errorf("%w: session.hash_key must be at least 32 bytes", ErrInvalidConfig)
	}
	if blockKey != nil && len(blockKey) != 16 && len(blockKey) != 24 && len(blockKey) != 32 {
		return fmt.Errorf("%w: session.block_key must be 16, 24 or 32 bytes", ErrInvalidConfig)
	}
	return nil
}
