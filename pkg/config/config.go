package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Server       ServerConfig
	DB           DBConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Server.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DEVFOLIO_APP_ENV" default:"local"`
	Port         string `envconfig:"DEVFOLIO_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"DEVFOLIO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DEVFOLIO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsLocal() bool {
	return strings.EqualFold(a.Env, AppEnvLocal)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// ServerConfig carries process-level serving knobs, consumed by the HTTP
// server and the systemd unit generator.
type ServerConfig struct {
	Workers      int           `envconfig:"DEVFOLIO_SERVER_WORKERS" default:"1"`
	Threads      int           `envconfig:"DEVFOLIO_SERVER_THREADS" default:"8"`
	ReadTimeout  time.Duration `envconfig:"DEVFOLIO_SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"DEVFOLIO_SERVER_WRITE_TIMEOUT" default:"30s"`
	AccessLog    string        `envconfig:"DEVFOLIO_SERVER_ACCESS_LOG" default:"-"`
	ErrorLog     string        `envconfig:"DEVFOLIO_SERVER_ERROR_LOG" default:"-"`
}

func (s ServerConfig) validate() error {
	if s.Workers <= 0 {
		return fmt.Errorf("%s must be a positive integer", EnvServerWorkers)
	}
	if s.Threads <= 0 {
		return fmt.Errorf("%s must be a positive integer", EnvServerThreads)
	}
	return nil
}

type DBConfig struct {
	DSN    string `envconfig:"DEVFOLIO_DB_DSN"`
	Driver string `envconfig:"DEVFOLIO_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"DEVFOLIO_DB_HOST"`
	Port     int    `envconfig:"DEVFOLIO_DB_PORT" default:"5432"`
	User     string `envconfig:"DEVFOLIO_DB_USER"`
	Password string `envconfig:"DEVFOLIO_DB_PASSWORD"`
	Name     string `envconfig:"DEVFOLIO_DB_NAME"`
	SSLMode  string `envconfig:"DEVFOLIO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DEVFOLIO_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DEVFOLIO_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DEVFOLIO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DEVFOLIO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"DEVFOLIO_REDIS_URL"`
	Address      string        `envconfig:"DEVFOLIO_REDIS_ADDR"`
	Password     string        `envconfig:"DEVFOLIO_REDIS_PASSWORD"`
	DB           int           `envconfig:"DEVFOLIO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"DEVFOLIO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DEVFOLIO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DEVFOLIO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DEVFOLIO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DEVFOLIO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The API
// degrades to unlimited traffic when redis is absent (local development).
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type RateLimitConfig struct {
	Window  time.Duration `envconfig:"DEVFOLIO_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"DEVFOLIO_RATE_LIMIT_IP_LIMIT" default:"120"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"DEVFOLIO_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	discrete := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range discreteDBEnvVars {
		if discrete[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
