package config

import (
	"flag"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAdminServerAddr = ":8080"
	defaultBackendURL      = "http://localhost:8081"
	defaultLogLevel        = "debug"
	defaultEnrichLimit     = 8
	defaultRefreshInterval = 0
	defaultAuthTokenKey    = "f53ac685bbceebd75043e6be2e06ee07"
)

type Config struct {
	AdminServerAddr string
	BackendURL      string
	LogLevel        string
	AuthTokenKey    string
	EnrichLimit     int
	RefreshInterval time.Duration
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		// optional .env, absence is not an error
		_ = godotenv.Load()

		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.AdminServerAddr, "a", defaultAdminServerAddr, "admin gateway address")
		flag.StringVar(&cfg.BackendURL, "b", defaultBackendURL, "store backend base URL")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.AuthTokenKey, "k", defaultAuthTokenKey, "session token key (hex)")
		flag.IntVar(&cfg.EnrichLimit, "c", defaultEnrichLimit, "enrichment concurrency cap")
		flag.DurationVar(&cfg.RefreshInterval, "r", defaultRefreshInterval, "board refresh interval, 0 disables")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.AdminServerAddr = runAddrEnv
		}
		if backendURLEnv := os.Getenv("BACKEND_URL"); backendURLEnv != "" {
			cfg.BackendURL = backendURLEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if tokenKeyEnv := os.Getenv("AUTH_TOKEN_KEY"); tokenKeyEnv != "" {
			cfg.AuthTokenKey = tokenKeyEnv
		}
		if limitEnv := os.Getenv("ENRICH_CONCURRENCY"); limitEnv != "" {
			if limit, err := strconv.Atoi(limitEnv); err == nil {
				cfg.EnrichLimit = limit
			}
		}
		if refreshEnv := os.Getenv("REFRESH_INTERVAL"); refreshEnv != "" {
			if interval, err := time.ParseDuration(refreshEnv); err == nil {
				cfg.RefreshInterval = interval
			}
		}

		singleton = &cfg
	})

	return singleton, nil
}
