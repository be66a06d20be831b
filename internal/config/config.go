package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config представляет основную конфигурацию CivicPulse API.
// Содержит настройки сервера, логгера, приложения и базы данных.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Logger   LoggerConfig   `json:"logger"`
	App      AppConfig      `json:"app"`
	Database DatabaseConfig `json:"database"`
}

// ServerConfig содержит настройки HTTP-сервера.
// Таймауты задаются строками длительности ("15s", "2m").
type ServerConfig struct {
	Address      string `json:"address"`
	ReadTimeout  string `json:"read_timeout"`
	WriteTimeout string `json:"write_timeout"`
	IdleTimeout  string `json:"idle_timeout"`
}

// LoggerConfig содержит настройки логирования.
// Пустые File и ErrorFile означают вывод в stdout и stderr.
type LoggerConfig struct {
	Level     string `json:"level"`
	File      string `json:"file"`
	ErrorFile string `json:"error_file"`
}

// AppConfig содержит значения по умолчанию для фильтров API.
type AppConfig struct {
	DefaultCity         string `json:"default_city"`
	DefaultJurisdiction string `json:"default_jurisdiction"`
	DefaultRaceLevel    string `json:"default_race_level"`
	ItemsLimit          int    `json:"items_limit"`
	ListLimit           int    `json:"list_limit"`
	MarketplaceLimit    int    `json:"marketplace_limit"`
	SourcesFile         string `json:"sources_file"`
}

// DatabaseConfig содержит параметры подключения к PostgreSQL.
type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
	MaxConns int    `json:"max_conns"`
}

// DSN возвращает строку подключения к PostgreSQL в формате URI.
// Имя пользователя, пароль и имя базы экранируются.
func (c *DatabaseConfig) DSN() string {
	query := url.Values{}
	query.Set("sslmode", c.SSLMode)
	if c.MaxConns > 0 {
		query.Set("pool_max_conns", strconv.Itoa(c.MaxConns))
	}
	user := url.User(c.Username)
	if c.Password != "" {
		user = url.UserPassword(c.Username, c.Password)
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: query.Encode(),
	}
	return dsn.String()
}

// Load загружает конфигурацию из JSON-файла поверх значений по умолчанию.
// Возвращает ошибку, если файл недоступен для чтения или содержит некорректный JSON.
func Load(configPath string) (*Config, error) {
	cfg := New()
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := json.Unmarshal(fileData, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse JSON from file %s: %w", configPath, err)
	}
	return cfg, nil
}

// LoadOptional ведет себя как Load, но при отсутствии файла возвращает значения по умолчанию.
func LoadOptional(configPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	return cfg, err
}

// New создает новый экземпляр Config со значениями по умолчанию.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Address:      ":8000",
			ReadTimeout:  "15s",
			WriteTimeout: "30s",
			IdleTimeout:  "2m",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		App: AppConfig{
			DefaultCity:         "Knoxville, TN",
			DefaultJurisdiction: "City of Knoxville",
			DefaultRaceLevel:    "city",
			ItemsLimit:          50,
			ListLimit:           200,
			MarketplaceLimit:    100,
			SourcesFile:         "config/scraper_sources.yaml",
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			DBName:  "civicpulse",
			SSLMode: "disable",
		},
	}
}

// ApplyEnv загружает .env-файлы (если есть) и переопределяет поля переменными окружения.
// Возвращает список загруженных файлов.
func (c *Config) ApplyEnv() ([]string, error) {
	var loaded []string
	for _, file := range []string{".env", ".env.local"} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Overload(file); err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}

	setString(&c.Server.Address, "CIVICPULSE_ADDR")
	setString(&c.Logger.Level, "LOG_LEVEL")
	setString(&c.App.SourcesFile, "CIVICPULSE_SOURCES_FILE")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Username, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")
	if v := strings.TrimSpace(os.Getenv("DB_PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return loaded, fmt.Errorf("invalid DB_PORT %q: %w", v, err)
		}
		c.Database.Port = port
	}
	return loaded, nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Validate проверяет корректность конфигурации и возвращает первую найденную проблему.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address is not set")
	}
	timeouts := []struct{ name, value string }{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.idle_timeout", c.Server.IdleTimeout},
	}
	for _, t := range timeouts {
		if _, err := time.ParseDuration(t.value); err != nil {
			return fmt.Errorf("invalid %s: %w", t.name, err)
		}
	}
	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logger.level must be one of debug, info, warn, error")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database host is not set")
	}
	if c.Database.Username == "" {
		return fmt.Errorf("database username is not set")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is not set")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("database port must be in 1..65535")
	}
	if c.App.ItemsLimit <= 0 || c.App.ListLimit <= 0 || c.App.MarketplaceLimit <= 0 {
		return fmt.Errorf("app limits must be positive numbers")
	}
	return nil
}

// Timeouts возвращает разобранные таймауты сервера. Вызывать после Validate.
func (s ServerConfig) Timeouts() (read, write, idle time.Duration) {
	read, _ = time.ParseDuration(s.ReadTimeout)
	write, _ = time.ParseDuration(s.WriteTimeout)
	idle, _ = time.ParseDuration(s.IdleTimeout)
	return read, write, idle
}
