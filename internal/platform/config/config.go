package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const DefaultPort = 8080

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	DB        DBConfig        `koanf:"db"`
	Guardians GuardiansConfig `koanf:"guardians"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
}

type AppConfig struct {
	Name string `koanf:"name" validate:"required"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
}

type LogConfig struct {
	Level  string `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=text json"`
	File   string `koanf:"file"`
}

// DBConfig: DSN vacío = repos in-memory.
type DBConfig struct {
	DSN            string        `koanf:"dsn"`
	AutoMigrate    bool          `koanf:"auto_migrate"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"required,min=1s"`
}

// GuardiansConfig: BaseURL vacío = no se verifica el tutor al crear mascotas.
type GuardiansConfig struct {
	BaseURL string        `koanf:"base_url" validate:"omitempty,url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"  validate:"required,min=100ms"`
	Retries int           `koanf:"retries"  validate:"min=0,max=10"`
}

// RateLimitConfig: RPS <= 0 desactiva el límite.
type RateLimitConfig struct {
	RPS   float64 `koanf:"rps"   validate:"min=0"`
	Burst int     `koanf:"burst" validate:"min=0"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func defaults() map[string]any {
	return map[string]any{
		"app.name": "vet-clinic-backend",

		"server.port":             DefaultPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "text",
		"log.file":   "",

		"db.dsn":             "",
		"db.auto_migrate":    true,
		"db.connect_timeout": "15s",

		"guardians.base_url": "",
		"guardians.api_key":  "",
		"guardians.timeout":  "5s",
		"guardians.retries":  2,

		"ratelimit.rps":   0,
		"ratelimit.burst": 20,
	}
}

// envKeys mapea las variables de entorno históricas del servicio a claves de config.
var envKeys = map[string]string{
	"APP_NAME":                 "app.name",
	"PORT":                     "server.port",
	"READ_TIMEOUT":             "server.read_timeout",
	"WRITE_TIMEOUT":            "server.write_timeout",
	"SHUTDOWN_TIMEOUT":         "server.shutdown_timeout",
	"LOG_LEVEL":                "log.level",
	"LOG_FORMAT":               "log.format",
	"LOG_FILE":                 "log.file",
	"DB_DSN":                   "db.dsn",
	"DB_AUTO_MIGRATE":          "db.auto_migrate",
	"DB_CONNECT_TIMEOUT":       "db.connect_timeout",
	"GUARDIAN_SERVICE_URL":     "guardians.base_url",
	"GUARDIAN_SERVICE_API_KEY": "guardians.api_key",
	"GUARDIAN_SERVICE_TIMEOUT": "guardians.timeout",
	"RATE_LIMIT_RPS":           "ratelimit.rps",
	"RATE_LIMIT_BURST":         "ratelimit.burst",
}

// Load aplica: defaults -> archivo YAML (opcional) -> variables de entorno, y valida.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, strings.TrimSpace(path)); err != nil {
		return nil, fmt.Errorf("loading config file %q: %w", path, err)
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s] // "" = se ignora
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
