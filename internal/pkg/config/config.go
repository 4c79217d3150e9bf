package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Booking      BookingConfig
	Notification NotificationConfig
	Redis        RedisConfig
	Reminder     ReminderConfig
	Metrics      MetricsConfig
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
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
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

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"facility-booking"`
}

// BookingConfig.TimeZone decides which calendar day a booking's start falls on
// for date filters and the reminder sweep.
type BookingConfig struct {
	TimeZone string `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
}

type NotificationConfig struct {
	QueueSize     int           `envconfig:"NOTIFICATION_QUEUE_SIZE" default:"256"`
	Workers       int           `envconfig:"NOTIFICATION_WORKERS" default:"2"`
	RelayInterval time.Duration `envconfig:"NOTIFICATION_RELAY_INTERVAL" default:"5s"`
	RelayBatch    int32         `envconfig:"NOTIFICATION_RELAY_BATCH" default:"50"`
	MaxAttempts   int32         `envconfig:"NOTIFICATION_MAX_ATTEMPTS" default:"5"`
	KafkaBrokers  []string      `envconfig:"KAFKA_BROKERS"`
	Topic         string        `envconfig:"NOTIFICATION_TOPIC" default:"booking-events"`
}

// Redis is optional: an empty Addr disables the distributed reminder lock.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type ReminderConfig struct {
	Enabled bool          `envconfig:"REMINDER_ENABLED" default:"true"`
	Hour    int           `envconfig:"REMINDER_HOUR" default:"9"`
	LockTTL time.Duration `envconfig:"REMINDER_LOCK_TTL" default:"23h"`

	// A failed sweep is retried after RetryDelay, up to MaxRetries times per day.
	RetryDelay time.Duration `envconfig:"REMINDER_RETRY_DELAY" default:"5m"`
	MaxRetries int           `envconfig:"REMINDER_MAX_RETRIES" default:"3"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Booking.TimeZone); err != nil {
		return Config{}, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", cfg.Booking.TimeZone, err)
	}
	if cfg.Reminder.Hour < 0 || cfg.Reminder.Hour > 23 {
		return Config{}, fmt.Errorf("invalid REMINDER_HOUR %d: must be within 0-23", cfg.Reminder.Hour)
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
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			TimeZone: "UTC",
		},
		Notification: NotificationConfig{
			QueueSize:     16,
			Workers:       1,
			RelayInterval: 100 * time.Millisecond,
			RelayBatch:    10,
			MaxAttempts:   3,
			Topic:         "booking-events-test",
		},
		Reminder: ReminderConfig{
			Enabled: false,
			Hour:    9,
			LockTTL: time.Hour,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/metrics",
		},
	}
}
