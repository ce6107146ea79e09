package config

import (
	"flag"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddress   = ":8080"
	defaultAPIBaseURL      = "http://localhost:3000/api"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultAlertTTL        = 5 * time.Second
	defaultRefreshInterval = time.Duration(0)
)

type Config struct {
	ServerAddr      string
	APIBaseURL      string
	LogLevel        string
	LogFormat       string
	AlertTTL        time.Duration
	RefreshInterval time.Duration
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
// Environment variables win over flags, a .env file in the working directory is loaded first.
func New() (*Config, error) {
	var err error

	once.Do(func() {
		_ = godotenv.Load()

		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "console server address")
		flag.StringVar(&cfg.APIBaseURL, "b", defaultAPIBaseURL, "REST backend base URL")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.LogFormat, "f", defaultLogFormat, "log format: json or console")
		flag.DurationVar(&cfg.AlertTTL, "t", defaultAlertTTL, "alert auto-dismiss delay")
		flag.DurationVar(&cfg.RefreshInterval, "i", defaultRefreshInterval, "periodic reload interval, 0 disables")

		flag.Parse()

		if err = applyEnv(&cfg); err != nil {
			return
		}

		singleton = &cfg
	})

	return singleton, err
}

// applyEnv overrides cfg with environment variables that are set
func applyEnv(cfg *Config) error {
	if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
		cfg.ServerAddr = runAddrEnv
	}
	if baseURLEnv := os.Getenv("API_BASE_URL"); baseURLEnv != "" {
		cfg.APIBaseURL = baseURLEnv
	}
	if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
		cfg.LogLevel = logLevelEnv
	}
	if logFormatEnv := os.Getenv("LOG_FORMAT"); logFormatEnv != "" {
		cfg.LogFormat = logFormatEnv
	}
	if ttlEnv := os.Getenv("ALERT_TTL"); ttlEnv != "" {
		ttl, err := time.ParseDuration(ttlEnv)
		if err != nil {
			return err
		}
		cfg.AlertTTL = ttl
	}
	if refreshEnv := os.Getenv("REFRESH_INTERVAL"); refreshEnv != "" {
		interval, err := time.ParseDuration(refreshEnv)
		if err != nil {
			return err
		}
		cfg.RefreshInterval = interval
	}

	return nil
}
