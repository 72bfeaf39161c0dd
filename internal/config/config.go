package config

// Token transport modes. A deployment picks exactly one: session tokens
// travel either as an Authorization bearer header or as an HTTP-only cookie.
const (
	TransportBearer = "bearer"
	TransportCookie = "cookie"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int    `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	RequestTimeoutS int    `mapstructure:"request_timeout_s" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL             string `mapstructure:"url"               validate:"required"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"    validate:"gte=0"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"gte=0"` // minutes
}

// AuthConfig contains all authentication and authorization settings.
//
// JWTSecret has no default on purpose: startup fails unless an explicit
// secret of at least 32 characters is supplied.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	TokenTransport       string `mapstructure:"token_transport"        validate:"required,oneof=bearer cookie"`
	PersistTokens        bool   `mapstructure:"persist_tokens"`
	SweepIntervalMinutes int    `mapstructure:"sweep_interval_minutes" validate:"gte=0"`

	// ClockSkewSeconds is the leeway applied to time claims during token
	// validation. The default of zero makes expiry absolute: a token is
	// rejected at its expiry instant.
	ClockSkewSeconds int `mapstructure:"clock_skew_seconds" validate:"gte=0"`
}
