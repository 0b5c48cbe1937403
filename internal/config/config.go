package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Supported inventory backends.
const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
	DBTypePgx      = "pgx"
	DBTypeMySQL    = "mysql"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server      ServerConfig
	App         AppConfig
	InventoryDB InventoryDBConfig
	Activity    ActivityConfig
	Metrics     MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"3000"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"jewelry-inventory-api"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// InventoryDBConfig holds inventory database settings.
type InventoryDBConfig struct {
	Type string `envconfig:"INVENTORY_DB_TYPE" default:"sqlite"` // sqlite, postgres, pgx or mysql
	Path string `envconfig:"INVENTORY_DB_PATH" default:"./data/inventory.db"`
	// Network backends
	Host     string `envconfig:"INVENTORY_DB_HOST" default:"localhost"`
	Port     int    `envconfig:"INVENTORY_DB_PORT"` // 0 picks the backend's default port
	Name     string `envconfig:"INVENTORY_DB_NAME" default:"joyas"`
	User     string `envconfig:"INVENTORY_DB_USER" default:"postgres"`
	Password string `envconfig:"INVENTORY_DB_PASS" default:""`
	SSLMode  string `envconfig:"INVENTORY_DB_SSLMODE" default:"disable"`
	// Pool
	MaxOpenConns    int           `envconfig:"INVENTORY_DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"INVENTORY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"INVENTORY_DB_CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"INVENTORY_DB_CONN_MAX_IDLE_TIME" default:"1m"`
}

// ActivityConfig holds activity side channel settings.
type ActivityConfig struct {
	MemorySize int `envconfig:"ACTIVITY_MEMORY_SIZE" default:"100"`
	QueueSize  int `envconfig:"ACTIVITY_QUEUE_SIZE" default:"1024"`

	RedisEnabled    bool   `envconfig:"ACTIVITY_REDIS_ENABLED" default:"false"`
	RedisHost       string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort       int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword   string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB         int    `envconfig:"REDIS_DB" default:"0"`
	RedisKey        string `envconfig:"ACTIVITY_REDIS_KEY" default:"jewelry:activity"`
	RedisMaxEntries int64  `envconfig:"ACTIVITY_REDIS_MAX_ENTRIES" default:"1000"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" default:""`
	KafkaTopic   string   `envconfig:"ACTIVITY_KAFKA_TOPIC" default:"inventory-activity"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

// Default ports per network backend.
const (
	DefaultPostgresPort = 5432
	DefaultMySQLPort    = 3306
)

func (i *InventoryDBConfig) address(defaultPort int) string {
	port := i.Port
	if port == 0 {
		port = defaultPort
	}
	return net.JoinHostPort(i.Host, strconv.Itoa(port))
}

// PostgresDSN returns the PostgreSQL connection URL with credentials escaped.
func (i *InventoryDBConfig) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(i.User, i.Password),
		Host:     i.address(DefaultPostgresPort),
		Path:     "/" + i.Name,
		RawQuery: url.Values{"sslmode": {i.SSLMode}}.Encode(),
	}
	return u.String()
}

// MySQLDSN returns the MySQL data source name.
func (i *InventoryDBConfig) MySQLDSN() string {
	cfg := mysql.NewConfig()
	cfg.User = i.User
	cfg.Passwd = i.Password
	cfg.Net = "tcp"
	cfg.Addr = i.address(DefaultMySQLPort)
	cfg.DBName = i.Name
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// Validate checks that the backend type is supported.
func (i *InventoryDBConfig) Validate() error {
	switch i.Type {
	case DBTypeSQLite, DBTypePostgres, DBTypePgx, DBTypeMySQL:
		return nil
	default:
		return fmt.Errorf("unsupported INVENTORY_DB_TYPE %q", i.Type)
	}
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RedisAddress returns the Redis address in host:port format.
func (a *ActivityConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", a.RedisHost, a.RedisPort)
}

// KafkaEnabled returns true when at least one broker is configured.
func (a *ActivityConfig) KafkaEnabled() bool {
	return len(a.KafkaBrokers) > 0
}

// cleanList trims every entry and drops the empty ones.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.InventoryDB.Type = strings.ToLower(cfg.InventoryDB.Type)
	cfg.Activity.KafkaBrokers = cleanList(cfg.Activity.KafkaBrokers)
	if err := cfg.InventoryDB.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
