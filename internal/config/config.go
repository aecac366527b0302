package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m", "30m"
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	TaskQueue                          string  `mapstructure:"task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSAllowedOrigins restricts browser origins; empty allows every origin
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTPublicKey verifies user tokens (RS256, PEM encoded)
	JWTPublicKey string `mapstructure:"jwt_public_key"`
	// CronSecret is the shared bearer secret of the job endpoints
	CronSecret string `mapstructure:"cron_secret"`
}

// CoinGeckoConfig holds the market data provider configuration
type CoinGeckoConfig struct {
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`
	// RPMLimit is the per-minute request budget the bulk loops pace themselves to
	RPMLimit     int           `mapstructure:"rpm_limit"`
	SafetyMargin time.Duration `mapstructure:"safety_margin"`
	CoolDown     time.Duration `mapstructure:"cooldown"`
}

// CoinMarketCapConfig holds the global metrics provider configuration
type CoinMarketCapConfig struct {
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`
}

// NewsAPIConfig holds the news provider configuration
type NewsAPIConfig struct {
	APIURL   string `mapstructure:"api_url"`
	APIKey   string `mapstructure:"api_key"`
	Query    string `mapstructure:"query"`
	PageSize int    `mapstructure:"page_size"`
}

// RateLimitConfig holds the local token bucket of a single provider
type RateLimitConfig struct {
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds the rate limit proxy configuration
type RateLimiterConfig struct {
	Providers    map[string]RateLimitConfig `mapstructure:"providers"`
	MaxWorkers   int                        `mapstructure:"max_workers"`
	MaxQueueSize int                        `mapstructure:"max_queue_size"`
}

// StalenessConfig holds the cache windows of the cache-or-fetch reads
type StalenessConfig struct {
	CoinData       time.Duration `mapstructure:"coin_data"`
	UserCoinList   time.Duration `mapstructure:"user_coin_list"`
	MarketChart1D  time.Duration `mapstructure:"market_chart_1d"`
	MarketChart7D  time.Duration `mapstructure:"market_chart_7d"`
	MarketChart30D time.Duration `mapstructure:"market_chart_30d"`
	MarketChart365 time.Duration `mapstructure:"market_chart_365d"`
	News           time.Duration `mapstructure:"news"`
	GlobalMetrics  time.Duration `mapstructure:"global_metrics"`
}

// MarketChart returns the staleness window of a chart bucket
func (c StalenessConfig) MarketChart(days domain.ChartDays) (time.Duration, error) {
	switch days {
	case domain.ChartDays1:
		return c.MarketChart1D, nil
	case domain.ChartDays7:
		return c.MarketChart7D, nil
	case domain.ChartDays30:
		return c.MarketChart30D, nil
	case domain.ChartDays365:
		return c.MarketChart365, nil
	default:
		return 0, fmt.Errorf("%w: %d", domain.ErrUnknownChartDuration, days)
	}
}

// JobsConfig holds the job runner configuration
type JobsConfig struct {
	CoinListPages   int `mapstructure:"coin_list_pages"`
	CoinListPerPage int `mapstructure:"coin_list_per_page"`
	// LockTTL bounds how long a crashed run can keep other runs of the same job out, and how long any run may last
	LockTTL time.Duration `mapstructure:"lock_ttl"`
}

// NotificationsConfig holds notification configuration
type NotificationsConfig struct {
	Retention time.Duration `mapstructure:"retention"`
	// Cooldown suppresses a repeat price-target alert for the same coin; 0 alerts on every sweep
	Cooldown time.Duration `mapstructure:"cooldown"`
}

// SMTPConfig holds SMTP relay configuration. An empty host disables email delivery.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// SyncConfig holds everything the job runner needs. It is shared by every binary that runs jobs.
type SyncConfig struct {
	Database      DatabaseConfig      `mapstructure:"database"`
	CoinGecko     CoinGeckoConfig     `mapstructure:"coingecko"`
	RateLimiter   RateLimiterConfig   `mapstructure:"rate_limiter"`
	Jobs          JobsConfig          `mapstructure:"jobs"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	SMTP          SMTPConfig          `mapstructure:"smtp"`
	NATS          NATSConfig          `mapstructure:"nats"`
	HTTPTimeout   time.Duration       `mapstructure:"http_timeout"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig    `mapstructure:",squash"`
	SyncConfig    `mapstructure:",squash"`
	Server        ServerConfig        `mapstructure:"server"`
	Auth          AuthConfig          `mapstructure:"auth"`
	CoinMarketCap CoinMarketCapConfig `mapstructure:"coinmarketcap"`
	NewsAPI       NewsAPIConfig       `mapstructure:"newsapi"`
	Staleness     StalenessConfig     `mapstructure:"staleness"`
}

// SweeperConfig holds configuration for the in-process job scheduler
type SweeperConfig struct {
	BaseConfig `mapstructure:",squash"`
	SyncConfig `mapstructure:",squash"`
	// Schedules maps a job key (see domain.ParseJobKey) to its run interval
	Schedules map[string]time.Duration `mapstructure:"schedules"`
}

// WorkerSyncConfig holds configuration for the Temporal sync worker
type WorkerSyncConfig struct {
	BaseConfig `mapstructure:",squash"`
	SyncConfig `mapstructure:",squash"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
	// Schedules maps a job key (see domain.ParseJobKey) to its schedule interval
	Schedules map[string]time.Duration `mapstructure:"schedules"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	// Job endpoints answer only when the run finishes, and a market chart run paces itself
	v.SetDefault("server.write_timeout", 3600)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("coinmarketcap.api_url", "https://pro-api.coinmarketcap.com")
	v.SetDefault("newsapi.api_url", "https://newsapi.org")
	v.SetDefault("newsapi.query", "crypto OR bitcoin OR ethereum")
	v.SetDefault("newsapi.page_size", 30)
	v.SetDefault("staleness.coin_data", "10m")
	v.SetDefault("staleness.user_coin_list", "5m")
	v.SetDefault("staleness.market_chart_1d", "30m")
	v.SetDefault("staleness.market_chart_7d", "2h")
	v.SetDefault("staleness.market_chart_30d", "6h")
	v.SetDefault("staleness.market_chart_365d", "24h")
	v.SetDefault("staleness.news", "1h")
	v.SetDefault("staleness.global_metrics", "15m")
	setSyncDefaults(v)
	v.SetDefault("rate_limiter.providers.coinmarketcap.requests_per_second", 0.5)
	v.SetDefault("rate_limiter.providers.coinmarketcap.burst", 1)
	v.SetDefault("rate_limiter.providers.newsapi.requests_per_second", 1)
	v.SetDefault("rate_limiter.providers.newsapi.burst", 1)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if err := validateDatabase(cfg.Database); err != nil {
		return nil, err
	}
	if cfg.Auth.CronSecret == "" {
		return nil, errors.New("auth.cron_secret is required")
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	setSyncDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("schedules", defaultSchedules())

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if err := validateDatabase(cfg.Database); err != nil {
		return nil, err
	}
	if err := validateSchedules(cfg.Schedules); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWorkerSyncConfig loads configuration for the Temporal sync worker
func LoadWorkerSyncConfig(configFile string, envPath string) (*WorkerSyncConfig, error) {
	v := configureViper("worker-sync", configFile, envPath)

	// Set defaults
	setSyncDefaults(v)
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.task_queue", "coinfolio-sync")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 4)
	v.SetDefault("temporal.worker_activities_per_second", 1)
	v.SetDefault("schedules", defaultSchedules())

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg WorkerSyncConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if err := validateDatabase(cfg.Database); err != nil {
		return nil, err
	}
	if err := validateSchedules(cfg.Schedules); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setSyncDefaults sets the defaults of SyncConfig
func setSyncDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("coingecko.api_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("coingecko.rpm_limit", domain.DEFAULT_RPM_LIMIT)
	v.SetDefault("coingecko.safety_margin", domain.DEFAULT_SAFETY_MARGIN)
	v.SetDefault("coingecko.cooldown", domain.DEFAULT_COOL_DOWN)
	// The bulk loops already pace themselves; the proxy only guards bursts from concurrent callers
	v.SetDefault("rate_limiter.providers.coingecko.requests_per_second", 0.5)
	v.SetDefault("rate_limiter.providers.coingecko.burst", 1)
	v.SetDefault("rate_limiter.providers.coingecko.max_queue_time", "5m")
	v.SetDefault("rate_limiter.max_workers", 8)
	v.SetDefault("rate_limiter.max_queue_size", 256)
	v.SetDefault("jobs.coin_list_pages", 4)
	v.SetDefault("jobs.coin_list_per_page", 250)
	v.SetDefault("jobs.lock_ttl", "2h")
	v.SetDefault("notifications.retention", "720h") // 30 days
	v.SetDefault("notifications.cooldown", "24h")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("nats.stream_name", "COINFOLIO_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("http_timeout", "30s")
}

// defaultSchedules returns the default job intervals keyed by job key
func defaultSchedules() map[string]string {
	return map[string]string{
		"coins-list":            "24h",
		"exchange-rate":         "1h",
		"market-chart:1":        "30m",
		"market-chart:7":        "2h",
		"market-chart:30":       "6h",
		"market-chart:365":      "24h",
		"trending":              "30m",
		"categories":            "6h",
		"notifications-cleanup": "24h",
		"price-targets":         "15m",
	}
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func validateDatabase(db DatabaseConfig) error {
	if db.Host == "" {
		return errors.New("database.host is required")
	}
	if db.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

func validateSchedules(schedules map[string]time.Duration) error {
	for key, interval := range schedules {
		if _, _, err := domain.ParseJobKey(key); err != nil {
			return fmt.Errorf("schedules.%s: %w", key, err)
		}
		if interval < 0 {
			return fmt.Errorf("schedules.%s: interval must not be negative", key)
		}
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("COINFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"http_timeout",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.cron_secret",
		// Providers
		"coingecko.api_url",
		"coingecko.api_key",
		"coingecko.rpm_limit",
		"coingecko.safety_margin",
		"coingecko.cooldown",
		"coinmarketcap.api_url",
		"coinmarketcap.api_key",
		"newsapi.api_url",
		"newsapi.api_key",
		"newsapi.query",
		"newsapi.page_size",
		// Rate limiter
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
		// Staleness
		"staleness.coin_data",
		"staleness.user_coin_list",
		"staleness.market_chart_1d",
		"staleness.market_chart_7d",
		"staleness.market_chart_30d",
		"staleness.market_chart_365d",
		"staleness.news",
		"staleness.global_metrics",
		// Jobs
		"jobs.coin_list_pages",
		"jobs.coin_list_per_page",
		"jobs.lock_ttl",
		"notifications.retention",
		"notifications.cooldown",
		// SMTP
		"smtp.host",
		"smtp.port",
		"smtp.username",
		"smtp.password",
		"smtp.from",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
