package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rpggio/bizdesk/internal/auth"
	"github.com/rpggio/bizdesk/internal/i18n"
)

// Transport modes.
const (
	ModeHTTP  = "http"
	ModeStdio = "stdio"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Store     StoreConfig     `yaml:"store"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
	I18n      I18nConfig      `yaml:"i18n"`
}

type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Seed    bool   `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AuthConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Admins     []auth.Admin  `yaml:"admins"`
	LoginDelay time.Duration `yaml:"login_delay"`
}

type I18nConfig struct {
	Locale string `yaml:"locale"`
}

// Addr returns the HTTP listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			CORSOrigins: []string{"*"},
		},
		Transport: TransportConfig{Mode: ModeHTTP},
		Store: StoreConfig{
			Backend: BackendMemory,
			Path:    "bizdesk.db",
			Seed:    true,
		},
		Log:  LogConfig{Level: "info"},
		Auth: AuthConfig{LoginDelay: auth.DefaultDelay},
		I18n: I18nConfig{Locale: string(i18n.DefaultLocale)},
	}
}

// Load reads configuration from an optional YAML file and environment
// variables. An empty path falls back to BIZDESK_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("BIZDESK_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("BIZDESK_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("BIZDESK_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid BIZDESK_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if origins := os.Getenv("BIZDESK_CORS_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = splitList(origins)
	}
	if mode := os.Getenv("BIZDESK_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = strings.ToLower(mode)
	}
	if backend := os.Getenv("BIZDESK_STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = strings.ToLower(backend)
	}
	if dbPath := os.Getenv("BIZDESK_DB_PATH"); dbPath != "" {
		cfg.Store.Path = dbPath
	}
	if seed := os.Getenv("BIZDESK_STORE_SEED"); seed != "" {
		v, err := strconv.ParseBool(seed)
		if err != nil {
			return fmt.Errorf("invalid BIZDESK_STORE_SEED: %w", err)
		}
		cfg.Store.Seed = v
	}
	if level := os.Getenv("BIZDESK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if enabled := os.Getenv("BIZDESK_AUTH_ENABLED"); enabled != "" {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return fmt.Errorf("invalid BIZDESK_AUTH_ENABLED: %w", err)
		}
		cfg.Auth.Enabled = v
	}
	if delay := os.Getenv("BIZDESK_LOGIN_DELAY"); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return fmt.Errorf("invalid BIZDESK_LOGIN_DELAY: %w", err)
		}
		cfg.Auth.LoginDelay = d
	}
	email, hash := os.Getenv("BIZDESK_ADMIN_EMAIL"), os.Getenv("BIZDESK_ADMIN_PASSWORD_HASH")
	if email != "" && hash != "" {
		cfg.Auth.Admins = append(cfg.Auth.Admins, auth.Admin{Email: email, PasswordHash: hash})
	}
	if locale := os.Getenv("BIZDESK_LOCALE"); locale != "" {
		cfg.I18n.Locale = locale
	}
	return nil
}

// Validate reports every inconsistent setting.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port out of range: %d", c.Server.Port))
	}
	switch c.Transport.Mode {
	case ModeHTTP, ModeStdio:
	default:
		errs = append(errs, fmt.Errorf("unknown transport mode %q", c.Transport.Mode))
	}
	switch c.Store.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.Store.Path == "" {
			errs = append(errs, errors.New("sqlite store requires a path"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store backend %q", c.Store.Backend))
	}
	if c.Auth.LoginDelay < 0 {
		errs = append(errs, errors.New("login delay must not be negative"))
	}
	if c.Auth.Enabled && len(c.Auth.Admins) == 0 {
		errs = append(errs, errors.New("auth enabled without admins"))
	}
	if _, err := i18n.ParseLocale(c.I18n.Locale); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
