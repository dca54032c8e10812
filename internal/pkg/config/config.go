package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type (
	Store struct {
		BaseURL        string
		RequestTimeout time.Duration // 0 - без таймаута на запрос
		ConnectTimeout time.Duration // 0 - не ждем стор на старте
		RateLimitQPS   int           // 0 - без ограничения
		RateLimitBurst int
	}

	Shell struct {
		AutoRefreshInterval time.Duration
	}

	DebugServer struct {
		Enabled bool
		Port    string
	}

	Log struct {
		Level string
	}

	Config struct {
		Store       Store
		Shell       Shell
		DebugServer DebugServer
		Log         Log
	}

	StoreMock struct {
		Port         string
		Seed         bool
		RateLimitQPS int
		Log          Log
	}
)

const defaultStoreMockPort = "5000"

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func LoadStoreMock() (*StoreMock, error) {
	seed, err := osGetBool("STORE_MOCK_SEED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	qps, err := osGetInt("STORE_MOCK_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := &StoreMock{
		Port:         os.Getenv("STORE_MOCK_PORT"),
		Seed:         seed,
		RateLimitQPS: qps,
		Log:          Log{Level: os.Getenv("LOG_LEVEL")},
	}
	if cfg.Port == "" {
		cfg.Port = defaultStoreMockPort
	}

	if cfg.RateLimitQPS < 0 {
		return nil, errors.New("validation: STORE_MOCK_RATE_LIMIT_QPS must not be negative")
	}
	if err := validateLogLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("STORE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	connectTimeout, err := osGetEnvDuration("STORE_CONNECT_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimitQPS, err := osGetInt("STORE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimitBurst, err := osGetInt("STORE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	autoRefresh, err := osGetEnvDuration("SHELL_AUTO_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	debugEnabled, err := osGetBool("DEBUG_SERVER_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Store: Store{
			BaseURL:        os.Getenv("STORE_BASE_URL"),
			RequestTimeout: requestTimeout,
			ConnectTimeout: connectTimeout,
			RateLimitQPS:   rateLimitQPS,
			RateLimitBurst: rateLimitBurst,
		},
		Shell: Shell{
			AutoRefreshInterval: autoRefresh,
		},
		DebugServer: DebugServer{
			Enabled: debugEnabled,
			Port:    os.Getenv("DEBUG_SERVER_PORT"),
		},
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Store.BaseURL == "" {
		return errors.New("STORE_BASE_URL is required (set via env or -base-url flag)")
	}
	u, err := url.Parse(cfg.Store.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("STORE_BASE_URL must be an absolute http(s) URL, got %q", cfg.Store.BaseURL)
	}

	if cfg.Store.RequestTimeout < 0 {
		return errors.New("STORE_REQUEST_TIMEOUT must not be negative")
	}
	if cfg.Store.ConnectTimeout < 0 {
		return errors.New("STORE_CONNECT_TIMEOUT must not be negative")
	}
	if cfg.Store.RateLimitQPS < 0 || cfg.Store.RateLimitBurst < 0 {
		return errors.New("STORE_RATE_LIMIT_QPS and STORE_RATE_LIMIT_BURST must not be negative")
	}
	if cfg.Store.RateLimitBurst > 0 && cfg.Store.RateLimitQPS == 0 {
		return errors.New("STORE_RATE_LIMIT_BURST requires STORE_RATE_LIMIT_QPS")
	}

	if cfg.Shell.AutoRefreshInterval < 0 {
		return errors.New("SHELL_AUTO_REFRESH_INTERVAL must not be negative")
	}

	if cfg.DebugServer.Port == "" && cfg.DebugServer.Enabled {
		return errors.New("DEBUG_SERVER_PORT is required when DEBUG_SERVER_ENABLED is set")
	}

	return validateLogLevel(cfg.Log.Level)
}

func validateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", level)
	}
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
