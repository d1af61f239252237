package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty means disabled: optional backends (Redis, object storage, admin password)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Admin     AdminConfig
	Geocoding GeocodingConfig
	Overpass  OverpassConfig
	Cache     CacheConfig
	Storage   StorageConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// AdminConfig holds the shared admin credential. When both Password and
// PasswordHash are empty every admin route is open.
type AdminConfig struct {
	Password        string `envconfig:"ADMIN_PASSWORD"`
	PasswordHash    string `envconfig:"ADMIN_PASSWORD_HASH"`
	SessionSecret   string `envconfig:"ADMIN_SESSION_SECRET"`
	SessionDuration string `envconfig:"ADMIN_SESSION_DURATION" default:"12h"`
}

func (c AdminConfig) Enabled() bool {
	return c.Password != "" || c.PasswordHash != ""
}

type GeocodingConfig struct {
	NominatimURL   string        `envconfig:"NOMINATIM_URL" default:"https://nominatim.openstreetmap.org"`
	UserAgent      string        `envconfig:"GEOCODING_USER_AGENT" default:"DealHub/1.0"`
	Timeout        time.Duration `envconfig:"NOMINATIM_TIMEOUT" default:"10s"`
	RequestsPerSec float64       `envconfig:"NOMINATIM_RPS" default:"1"`
}

// OverpassConfig: Timeout bounds one request, SearchDeadline one search across
// every endpoint and query variant.
type OverpassConfig struct {
	Endpoints      []string      `envconfig:"OVERPASS_ENDPOINTS" default:"https://overpass-api.de/api/interpreter,https://overpass.kumi.systems/api/interpreter,https://overpass.openstreetmap.ru/api/interpreter"`
	Timeout        time.Duration `envconfig:"OVERPASS_TIMEOUT" default:"120s"`
	SearchDeadline time.Duration `envconfig:"OVERPASS_SEARCH_DEADLINE" default:"120s"`
	QueryTimeout   int           `envconfig:"OVERPASS_QUERY_TIMEOUT" default:"60"`
}

type CacheConfig struct {
	RedisURL string        `envconfig:"REDIS_URL"`
	TTL      time.Duration `envconfig:"LOCATION_CACHE_TTL" default:"6h"`
}

type StorageConfig struct {
	Endpoint  string `envconfig:"MINIO_ENDPOINT"`
	AccessKey string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	Bucket    string `envconfig:"MINIO_BUCKET" default:"deal-images"`
	PublicURL string `envconfig:"MINIO_PUBLIC_URL"`
	MaxBytes  int64  `envconfig:"UPLOAD_MAX_BYTES" default:"5242880"`
}

func (c StorageConfig) Enabled() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != ""
}

type RateLimitConfig struct {
	LocationRPS   float64 `envconfig:"LOCATION_RATE_LIMIT_RPS" default:"0.5"`
	LocationBurst int     `envconfig:"LOCATION_RATE_LIMIT_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Admin: AdminConfig{
			Password:        "test-admin-password",
			SessionSecret:   "test-session-secret",
			SessionDuration: "1h",
		},
		Geocoding: GeocodingConfig{
			NominatimURL:   "http://127.0.0.1:0",
			UserAgent:      "DealHub-Test/1.0",
			Timeout:        2 * time.Second,
			RequestsPerSec: 100,
		},
		Overpass: OverpassConfig{
			Endpoints:      []string{"http://127.0.0.1:0/api/interpreter"},
			Timeout:        2 * time.Second,
			SearchDeadline: 5 * time.Second,
			QueryTimeout:   10,
		},
		Cache: CacheConfig{
			TTL: time.Minute,
		},
		Storage: StorageConfig{
			Bucket:   "deal-images",
			MaxBytes: 1 << 20,
		},
		RateLimit: RateLimitConfig{
			LocationRPS:   100,
			LocationBurst: 100,
		},
	}
}
