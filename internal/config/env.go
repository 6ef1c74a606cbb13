package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Env is the runtime configuration, read from the process environment
// (and a .env file when present).
type Env struct {
	AppAddr            string `koanf:"app_addr"`
	Port               string `koanf:"port"`
	GinMode            string `koanf:"gin_mode" validate:"omitempty,oneof=debug release test"`
	DBDriver           string `koanf:"db_driver" validate:"oneof=mysql pgx memory"`
	DBDSN              string `koanf:"db_dsn" validate:"required_unless=DBDriver memory"`
	CORSAllowedOrigins string `koanf:"cors_allowed_origins"`
	LogLevel           string `koanf:"log_level"`
	LogFormat          string `koanf:"log_format" validate:"omitempty,oneof=console json"`
	ShutdownTimeout    int    `koanf:"shutdown_timeout" validate:"gte=0"`
}

const (
	defaultPort            = "3000"
	defaultDriver          = "memory"
	defaultShutdownTimeout = 10
)

// LoadEnv reads configuration, applies defaults and validates it.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("gagal membaca .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Env{}, fmt.Errorf("gagal memuat environment: %w", err)
	}

	var e Env
	if err := k.Unmarshal("", &e); err != nil {
		return Env{}, fmt.Errorf("gagal unmarshal config: %w", err)
	}
	e.applyDefaults()

	if err := validator.New().Struct(e); err != nil {
		return Env{}, fmt.Errorf("config tidak valid: %w", err)
	}
	return e, nil
}

func (e *Env) applyDefaults() {
	e.AppAddr = strings.TrimSpace(e.AppAddr)
	if e.AppAddr == "" {
		port := strings.TrimSpace(e.Port)
		if port == "" {
			port = defaultPort
		}
		e.AppAddr = ":" + port
	}
	e.GinMode = strings.TrimSpace(e.GinMode)
	e.DBDriver = strings.ToLower(strings.TrimSpace(e.DBDriver))
	if e.DBDriver == "" {
		e.DBDriver = defaultDriver
	}
	e.DBDSN = strings.TrimSpace(e.DBDSN)
	if e.ShutdownTimeout == 0 {
		e.ShutdownTimeout = defaultShutdownTimeout
	}
}

func (e Env) ShutdownGrace() time.Duration {
	return time.Duration(e.ShutdownTimeout) * time.Second
}
