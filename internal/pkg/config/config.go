package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, marketplace URL), security settings
// - default: Values common across all environments (timezone, timeout, countdown, cache size), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Marketplace MarketplaceConfig
	PaymentGate PaymentGateConfig
	Cache       CacheConfig
	Notify      NotifyConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// トークンはマーケットプレイス側が発行する。ここでは検証のみ
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type MarketplaceConfig struct {
	BaseURL      string        `envconfig:"MARKETPLACE_BASE_URL" required:"true"`
	Timeout      time.Duration `envconfig:"MARKETPLACE_TIMEOUT" default:"15s"`
	MaxBodyBytes int64         `envconfig:"MARKETPLACE_MAX_BODY_BYTES" default:"1048576"`
}

type PaymentGateConfig struct {
	CountdownSeconds int    `envconfig:"PAYMENT_GATE_COUNTDOWN" default:"20"`
	TriggerPhrase    string `envconfig:"PAYMENT_GATE_TRIGGER" default:"requires payment at the property"`
}

type CacheConfig struct {
	UnlockSize   int `envconfig:"CACHE_UNLOCK_SIZE" default:"1024"`
	DealCodeSize int `envconfig:"CACHE_DEAL_CODE_SIZE" default:"1024"`
}

type NotifyConfig struct {
	Outbox bool `envconfig:"NOTIFY_OUTBOX" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.PaymentGate.CountdownSeconds < 0 {
		return Config{}, fmt.Errorf("PAYMENT_GATE_COUNTDOWN must not be negative: %d", cfg.PaymentGate.CountdownSeconds)
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
			TimeZone: "Asia/Tokyo",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Marketplace: MarketplaceConfig{
			BaseURL:      "http://localhost:18080",
			Timeout:      5 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		PaymentGate: PaymentGateConfig{
			CountdownSeconds: 20,
			TriggerPhrase:    "requires payment at the property",
		},
		Cache: CacheConfig{
			UnlockSize:   16,
			DealCodeSize: 16,
		},
		Notify: NotifyConfig{
			Outbox: false,
		},
	}
}
