package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers supported by the transaction repository layer.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Query    QueryConfig
	Security SecurityConfig
	Logger   LoggerConfig
	Import   ImportConfig
	Client   ClientConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type StoreConfig struct {
	Driver           string
	SelectionTimeout time.Duration
}

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type QueryConfig struct {
	DefaultLimit           int
	MaxLimit               int
	FilterOptionsRefresh   time.Duration
	StoreFailureThreshold  int
	StoreFailureResetAfter time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type LoggerConfig struct {
	Level  string
	Format string
}

type ImportConfig struct {
	CSVFilePath string
	BatchSize   int
}

type ClientConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	SearchDebounce time.Duration
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			Host:            getEnv("HOST", ""),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Store: StoreConfig{
			Driver:           strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMongo)),
			SelectionTimeout: getDurationEnv("STORE_SELECTION_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "truestate"),
			Password:        getEnv("DB_PASSWORD", "truestate"),
			Name:            getEnv("DB_NAME", "truestate"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("SQLITE_PATH", "truestate.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
		},
		Mongo: MongoConfig{
			URI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:   getEnv("MONGODB_DBNAME", "truestate"),
			Collection: getEnv("MONGODB_COLLECTION", "transactions"),
		},
		Query: QueryConfig{
			DefaultLimit:           getIntEnv("QUERY_DEFAULT_LIMIT", 10),
			MaxLimit:               getIntEnv("QUERY_MAX_LIMIT", 100),
			FilterOptionsRefresh:   getDurationEnv("FILTER_OPTIONS_REFRESH_INTERVAL", 5*time.Minute),
			StoreFailureThreshold:  getIntEnv("STORE_FAILURE_THRESHOLD", 5),
			StoreFailureResetAfter: getDurationEnv("STORE_FAILURE_RESET_AFTER", 30*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Import: ImportConfig{
			CSVFilePath: getEnv("CSV_FILE_PATH", "truestate_assignment_dataset.csv"),
			BatchSize:   getIntEnv("IMPORT_BATCH_SIZE", 1000),
		},
		Client: ClientConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:5000"),
			RequestTimeout: getDurationEnv("CLIENT_REQUEST_TIMEOUT", 15*time.Second),
			SearchDebounce: getDurationEnv("CLIENT_SEARCH_DEBOUNCE", 300*time.Millisecond),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports configuration combinations the process cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverSQLite, StoreDriverMongo, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Query.DefaultLimit < 1 || c.Query.DefaultLimit > c.Query.MaxLimit {
		return fmt.Errorf("QUERY_DEFAULT_LIMIT must be between 1 and QUERY_MAX_LIMIT (%d)", c.Query.MaxLimit)
	}

	if c.Import.BatchSize < 1 {
		return fmt.Errorf("IMPORT_BATCH_SIZE must be positive")
	}

	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrationURL returns a postgres:// URL form of the connection settings.
func (c *DatabaseConfig) MigrationURL() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     c.Name,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// MaskedURI hides credentials in the mongo connection string for logging.
func (c *MongoConfig) MaskedURI() string {
	return MaskURI(c.URI)
}

// MaskURI hides the password of a connection URI.
func MaskURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid uri>"
	}
	return u.Redacted()
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns the dashboard dev origin
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := getEnv("CORS_ORIGIN", os.Getenv("CORS_ALLOW_ORIGINS"))

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ORIGIN not set in production environment, defaulting to http://localhost:5173")
		}
		return []string{"http://localhost:5173"}
	}

	origins := strings.Split(corsOrigins, ",")
	result := make([]string, 0, len(origins))
	for _, origin := range origins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
