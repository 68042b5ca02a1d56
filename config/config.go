package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	RabbitMQ     RabbitMQConfig     `mapstructure:"rabbitmq"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	AES          AESConfig          `mapstructure:"aes"`
	Security     SecurityConfig     `mapstructure:"security"`
	InternalAuth InternalAuthConfig `mapstructure:"internal_auth"`
	Currency     CurrencyConfig     `mapstructure:"currency"`
	Withdrawal   WithdrawalConfig   `mapstructure:"withdrawal"`
	Linking      LinkingConfig      `mapstructure:"linking"`
	Loan         LoanConfig         `mapstructure:"loan"`
	Resolver     ResolverConfig     `mapstructure:"resolver"`
	Scheduler    SchedulerConfig    `mapstructure:"scheduler"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	Log          LogConfig          `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// StorageConfig selects the ledger backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection URL. Credentials are escaped.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RabbitMQConfig configures OTP delivery and settlement events.
// An empty URL disables the broker and OTPs are only logged.
type RabbitMQConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

// SecurityConfig holds the key used to digest OTPs and linking PINs.
type SecurityConfig struct {
	DigestSecret string `mapstructure:"digest_secret"`
}

// InternalAuthConfig authenticates calls from the order and onboarding services.
type InternalAuthConfig struct {
	Secret    string        `mapstructure:"secret"`
	MaxSkew   time.Duration `mapstructure:"max_skew"`
	NonceTTL  time.Duration `mapstructure:"nonce_ttl"`
	ServiceID string        `mapstructure:"service_id"`
}

type CurrencyConfig struct {
	Code   string `mapstructure:"code"`
	Symbol string `mapstructure:"symbol"`
}

type WithdrawalConfig struct {
	MinAmount      int64         `mapstructure:"min_amount"` // minor units
	OtpTTL         time.Duration `mapstructure:"otp_ttl"`
	MaxOtpAttempts int           `mapstructure:"max_otp_attempts"`
	MaxOtpResends  int           `mapstructure:"max_otp_resends"`
	StaleAfter     time.Duration `mapstructure:"stale_after"`
}

type LinkingConfig struct {
	AttemptTTL time.Duration `mapstructure:"attempt_ttl"`
}

type LoanConfig struct {
	Lookback time.Duration `mapstructure:"lookback"`
}

type ResolverConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SchedulerConfig struct {
	SessionCleanup string `mapstructure:"session_cleanup"`
}

// RateLimitConfig bounds PIN and OTP guesses per merchant.
type RateLimitConfig struct {
	PinAttempts int64         `mapstructure:"pin_attempts"`
	PinWindow   time.Duration `mapstructure:"pin_window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MSS_ (Merchant Settlement Service).
// Nested keys use underscore: MSS_DATABASE_HOST, MSS_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "merchant_settlement")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "settlement.events")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "merchant-dashboard")
	v.SetDefault("aes.key", "")
	v.SetDefault("security.digest_secret", "")
	v.SetDefault("internal_auth.secret", "")
	v.SetDefault("internal_auth.max_skew", "5m")
	v.SetDefault("internal_auth.nonce_ttl", "10m")
	v.SetDefault("internal_auth.service_id", "order-service")
	v.SetDefault("currency.code", "NGN")
	v.SetDefault("currency.symbol", "₦")
	v.SetDefault("withdrawal.min_amount", 10_000)
	v.SetDefault("withdrawal.otp_ttl", "10m")
	v.SetDefault("withdrawal.max_otp_attempts", 5)
	v.SetDefault("withdrawal.max_otp_resends", 3)
	v.SetDefault("withdrawal.stale_after", "30m")
	v.SetDefault("linking.attempt_ttl", "15m")
	v.SetDefault("loan.lookback", "8760h")
	v.SetDefault("resolver.base_url", "https://api.sandbox.getanchor.co")
	v.SetDefault("resolver.api_key", "")
	v.SetDefault("resolver.timeout", "10s")
	v.SetDefault("scheduler.session_cleanup", "@every 1m")
	v.SetDefault("rate_limit.pin_attempts", 5)
	v.SetDefault("rate_limit.pin_window", "15m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MSS_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MSS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MinSecretLength is the shortest accepted HMAC key for jwt.secret,
// internal_auth.secret and security.digest_secret.
const MinSecretLength = 32

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("storage.driver must be postgres or memory, got %q", c.Storage.Driver)
	}
	for _, secret := range []struct{ key, value string }{
		{"jwt.secret", c.JWT.Secret},
		{"internal_auth.secret", c.InternalAuth.Secret},
		{"security.digest_secret", c.Security.DigestSecret},
	} {
		if len(strings.TrimSpace(secret.value)) < MinSecretLength {
			return fmt.Errorf("%s must be at least %d characters", secret.key, MinSecretLength)
		}
	}
	if c.Withdrawal.MinAmount <= 0 {
		return fmt.Errorf("withdrawal.min_amount must be positive")
	}
	if c.Withdrawal.MaxOtpAttempts <= 0 || c.Withdrawal.MaxOtpResends < 0 {
		return fmt.Errorf("withdrawal otp limits must be positive")
	}
	if c.Withdrawal.OtpTTL <= 0 {
		return fmt.Errorf("withdrawal.otp_ttl must be positive")
	}
	return nil
}
