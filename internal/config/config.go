package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	ShutdownTimeout time.Duration
	LogLevel        string
	SeedCatalog     bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	Shop            ShopInfo
	AdminAPIKey     string
	AdminAPIKeyHash string // bcrypt, wins over AdminAPIKey
	CORSOrigins     []string

	SMTP SMTPConfig

	NotifyPollInterval time.Duration
	NotifyWorkers      int
	NotifyBatchSize    int
	NotifyMaxAttempts  int
	LowStockThreshold  int
	LowStockReport     string
}

// ShopInfo is the public contact block shown on about and contact pages.
type ShopInfo struct {
	Name       string
	Location   string
	Phone      string
	Email      string
	MomoNumber string
	AdminEmail string
}

// SMTPConfig describes outbound mail relay. Empty Host disables SMTP delivery.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

const (
	defaultRunAddress         = ":8080"
	defaultShutdownTimeout    = 10 * time.Second
	defaultLogLevel           = "info"
	defaultRedisAddr          = "localhost:6379"
	defaultSessionSecret      = "change-me-in-production"
	defaultSessionTTL         = 14 * 24 * time.Hour
	defaultShopName           = "NickyG Computers"
	defaultShopLocation       = "Wa, Upper West, Ghana"
	defaultShopPhone          = "0597427569"
	defaultShopEmail          = "info@nickygcomputers.com"
	defaultMomoNumber         = "0597427569"
	defaultAdminEmail         = "admin@nickygcomputers.com"
	defaultSMTPPort           = 587
	defaultSMTPFrom           = "noreply@nickygcomputers.com"
	defaultNotifyPollInterval = 5 * time.Second
	defaultNotifyWorkers      = 2
	defaultNotifyBatchSize    = 16
	defaultNotifyMaxAttempts  = 5
	defaultLowStockThreshold  = 5
)

// Load parses configuration from an optional env file, flags and environment variables.
func Load() (*Config, error) {
	if err := loadEnvFile(os.Getenv("ENV_FILE")); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

// loadEnvFile populates the process environment from a dotenv file. Variables
// already present in the environment win. A missing default file is ignored.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
		SeedCatalog:     getBool(lookup, "SEED_CATALOG", false),

		RedisAddr:     getString(lookup, "REDIS_ADDR", defaultRedisAddr),
		RedisPassword: getString(lookup, "REDIS_PASSWORD", ""),
		RedisDB:       getInt(lookup, "REDIS_DB", 0),
		SessionSecret: getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:    getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		CookieSecure:  getBool(lookup, "COOKIE_SECURE", false),

		Shop: ShopInfo{
			Name:       getString(lookup, "SHOP_NAME", defaultShopName),
			Location:   getString(lookup, "SHOP_LOCATION", defaultShopLocation),
			Phone:      getString(lookup, "SHOP_PHONE", defaultShopPhone),
			Email:      getString(lookup, "SHOP_EMAIL", defaultShopEmail),
			MomoNumber: getString(lookup, "MOMO_NUMBER", defaultMomoNumber),
			AdminEmail: getString(lookup, "ADMIN_EMAIL", defaultAdminEmail),
		},
		AdminAPIKey:     getString(lookup, "ADMIN_API_KEY", ""),
		AdminAPIKeyHash: getString(lookup, "ADMIN_API_KEY_HASH", ""),
		CORSOrigins:     splitList(getString(lookup, "CORS_ORIGINS", "")),

		SMTP: SMTPConfig{
			Host:     getString(lookup, "SMTP_HOST", ""),
			Port:     getInt(lookup, "SMTP_PORT", defaultSMTPPort),
			Username: getString(lookup, "SMTP_USERNAME", ""),
			Password: getString(lookup, "SMTP_PASSWORD", ""),
			From:     getString(lookup, "SMTP_FROM", defaultSMTPFrom),
		},

		NotifyPollInterval: getDuration(lookup, "NOTIFY_POLL_INTERVAL", defaultNotifyPollInterval),
		NotifyWorkers:      getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyBatchSize:    getInt(lookup, "NOTIFY_BATCH_SIZE", defaultNotifyBatchSize),
		NotifyMaxAttempts:  getInt(lookup, "NOTIFY_MAX_ATTEMPTS", defaultNotifyMaxAttempts),
		LowStockThreshold:  getInt(lookup, "LOW_STOCK_THRESHOLD", defaultLowStockThreshold),
		LowStockReport:     getString(lookup, "LOW_STOCK_REPORT", ""),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.NotifyPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		sessionTTLStr      = cfg.SessionTTL.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address for session carts")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session cookies")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session cookie and cart lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&pollIntervalStr, "notify-interval", pollIntervalStr, "Interval between outbox polls")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of concurrent notification workers")
	fs.IntVar(&cfg.NotifyBatchSize, "notify-batch", cfg.NotifyBatchSize, "Maximum notifications per polling batch")
	fs.IntVar(&cfg.NotifyMaxAttempts, "notify-attempts", cfg.NotifyMaxAttempts, "Delivery attempts before a notification is dead-lettered")
	fs.IntVar(&cfg.LowStockThreshold, "low-stock", cfg.LowStockThreshold, "Default low stock threshold")
	fs.StringVar(&cfg.LowStockReport, "report", cfg.LowStockReport, "Path of the xlsx low stock report written by stockcheck")
	fs.BoolVar(&cfg.SeedCatalog, "seed", cfg.SeedCatalog, "Seed sample catalog on startup")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.NotifyPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid notify interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyBatchSize <= 0 {
		cfg.NotifyBatchSize = defaultNotifyBatchSize
	}

	if cfg.NotifyMaxAttempts <= 0 {
		cfg.NotifyMaxAttempts = defaultNotifyMaxAttempts
	}

	if cfg.NotifyPollInterval <= 0 {
		cfg.NotifyPollInterval = defaultNotifyPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.LowStockThreshold < 0 {
		cfg.LowStockThreshold = defaultLowStockThreshold
	}

	if cfg.SMTP.Port <= 0 {
		cfg.SMTP.Port = defaultSMTPPort
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("redis address must be provided")
	}

	if cfg.CookieSecure && cfg.SessionSecret == defaultSessionSecret {
		return nil, fmt.Errorf("session secret must be changed when secure cookies are enabled")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
