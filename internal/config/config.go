package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageBackendLocal = "local"
	StorageBackendS3    = "s3"

	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"

	MailTransportDirect = "direct"
	MailTransportSQS    = "sqs"
)

type Config struct {
	AppEnv        string `env:"APP_ENV"        envDefault:"development"`
	AppName       string `env:"APP_NAME"       envDefault:"Business Feed"`
	AppVersion    string `env:"APP_VERSION"    envDefault:"dev"`
	ServerAddress string `env:"SERVER_ADDRESS"`
	ServerPort    int    `env:"SERVER_PORT"    envDefault:"8080"`
	// ServerName is the externally visible host used in emailed links.
	ServerName string `env:"SERVER_NAME" envDefault:"localhost:8080"`
	// AppDeeplink receives the OAuth result as query parameters.
	AppDeeplink string `env:"APP_DEEPLINK" envDefault:"businessfeed://auth"`
	// TrustedProxies may set X-Forwarded-For. Empty means the client address
	// is always the connection's remote address.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	JWTSecret       string `env:"JWT_SECRET,required,notEmpty"`
	JWTExpirationMS int64  `env:"JWT_EXPIRATION_MS" envDefault:"86400000"`
	BcryptCost      int    `env:"BCRYPT_COST"       envDefault:"10"`

	RateLimit RateLimitConfig
	Storage   StorageConfig
	Mail      MailConfig
	OAuth     OAuthConfig
}

type RateLimitConfig struct {
	Backend           string        `env:"RATE_LIMIT_BACKEND"             envDefault:"memory"`
	Unauthenticated   int           `env:"RATE_LIMIT_UNAUTHENTICATED"     envDefault:"30"`
	Authenticated     int           `env:"RATE_LIMIT_AUTHENTICATED"       envDefault:"60"`
	Admin             int           `env:"RATE_LIMIT_ADMIN"               envDefault:"100"`
	TimeWindowMinutes int           `env:"RATE_LIMIT_TIME_WINDOW_MINUTES" envDefault:"1"`
	CacheSize         int           `env:"RATE_LIMIT_CACHE_SIZE"          envDefault:"100000"`
	CacheTTL          time.Duration `env:"RATE_LIMIT_CACHE_TTL"           envDefault:"1h"`
}

type StorageConfig struct {
	Backend        string `env:"STORAGE_BACKEND"  envDefault:"local"`
	UploadPath     string `env:"UPLOAD_PATH"      envDefault:"./uploads"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	S3Prefix       string `env:"S3_MEDIA_PREFIX"  envDefault:"media/"`
}

type MailConfig struct {
	Transport      string `env:"MAIL_TRANSPORT"   envDefault:"direct"`
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	From           string `env:"EMAIL_FROM"       envDefault:"no-reply@localhost"`
	FromName       string `env:"EMAIL_FROM_NAME"`
}

type OAuthConfig struct {
	// RedirectBaseURL is joined with /login/oauth2/code/<provider>.
	RedirectBaseURL    string   `env:"OAUTH_REDIRECT_BASE_URL" envDefault:"http://localhost:8080"`
	GoogleClientID     string   `env:"OAUTH_GOOGLE_CLIENT_ID"`
	GoogleClientSecret string   `env:"OAUTH_GOOGLE_CLIENT_SECRET"`
	GoogleScopes       []string `env:"OAUTH_GOOGLE_SCOPES"     envSeparator:"," envDefault:"openid,email,profile"`
	AppleClientID      string   `env:"OAUTH_APPLE_CLIENT_ID"`
	AppleClientSecret  string   `env:"OAUTH_APPLE_CLIENT_SECRET"`
	AppleScopes        []string `env:"OAUTH_APPLE_SCOPES"      envSeparator:"," envDefault:"openid,email,name"`
}

func parse[T any]() (*T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func Load() (*Config, error) {
	cfg, err := parse[Config]()
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadMailConfig reads only the mail settings, for processes that do not
// serve HTTP.
func LoadMailConfig() (*MailConfig, error) {
	return parse[MailConfig]()
}

// CleanupConfig drives cmd/cleanup_worker, which needs no HTTP settings.
type CleanupConfig struct {
	Interval time.Duration `env:"TOKEN_CLEANUP_INTERVAL" envDefault:"1h"`
}

func LoadCleanupConfig() (*CleanupConfig, error) {
	cfg, err := parse[CleanupConfig]()
	if err != nil {
		return nil, err
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("TOKEN_CLEANUP_INTERVAL must be positive")
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTExpirationMS <= 0 {
		return errors.New("JWT_EXPIRATION_MS must be positive")
	}
	if c.RateLimit.TimeWindowMinutes <= 0 {
		return errors.New("RATE_LIMIT_TIME_WINDOW_MINUTES must be positive")
	}
	switch c.RateLimit.Backend {
	case RateLimitBackendMemory, RateLimitBackendRedis:
	default:
		return fmt.Errorf("unknown RATE_LIMIT_BACKEND %q", c.RateLimit.Backend)
	}
	switch c.Storage.Backend {
	case StorageBackendLocal, StorageBackendS3:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}
	switch c.Mail.Transport {
	case MailTransportDirect, MailTransportSQS:
	default:
		return fmt.Errorf("unknown MAIL_TRANSPORT %q", c.Mail.Transport)
	}
	return nil
}

func (c *Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpirationMS) * time.Millisecond
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.TimeWindowMinutes) * time.Minute
}

func (c OAuthConfig) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func (c OAuthConfig) AppleEnabled() bool {
	return c.AppleClientID != "" && c.AppleClientSecret != ""
}

func (c OAuthConfig) RedirectURL(provider string) string {
	return c.RedirectBaseURL + "/login/oauth2/code/" + provider
}
