package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"

	FallbackStatic = "static"
	FallbackError  = "error"

	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Store    StoreConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Session  SessionConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	Locale      string
}

// UpstreamConfig points at the REST API that owns skills and users.
// SkillsFallback decides what the dashboard does when the skills endpoint
// fails: "static" serves the bundled catalog, "error" surfaces the failure.
type UpstreamConfig struct {
	SkillsEndpoint       string
	UsersEndpoint        string
	Timeout              time.Duration
	SkillsFallback       string
	SignupDuplicateCheck bool
}

type StoreConfig struct {
	Backend   string
	KeyPrefix string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

// SessionConfig also bounds the in-process profile cache: at most
// ProfileCacheSize sessions are held, each for ProfileCacheTTL.
type SessionConfig struct {
	Secret           string
	TTL              time.Duration
	CookieName       string
	Secure           bool
	ProfileCacheSize int
	ProfileCacheTTL  time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	dur := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	flag := func(key string, def bool) bool {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return b
	}
	oneOf := func(key, def string, allowed ...string) string {
		v := strings.ToLower(opt(key, def))
		for _, a := range allowed {
			if v == a {
				return v
			}
		}
		invalid = append(invalid, key)
		return def
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		Locale:      opt("APP_LOCALE", "en"),
	}

	cfg.Upstream = UpstreamConfig{
		SkillsEndpoint:       opt("SKILLS_ENDPOINT", "http://localhost:3000/skills"),
		UsersEndpoint:        opt("USERS_ENDPOINT", "http://localhost:3000/users"),
		Timeout:              dur("UPSTREAM_TIMEOUT", 5*time.Second),
		SkillsFallback:       oneOf("SKILLS_FALLBACK", FallbackStatic, FallbackStatic, FallbackError),
		SignupDuplicateCheck: flag("SIGNUP_DUPLICATE_CHECK", false),
	}

	cfg.Store = StoreConfig{
		Backend:   oneOf("STORE_BACKEND", StoreMemory, StoreMemory, StoreRedis, StorePostgres),
		KeyPrefix: opt("STORE_KEY_PREFIX", "tas:"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: strings.TrimSpace(getenv("REDIS_PASSWORD")),
		TTL:      dur("REDIS_TTL", 600*time.Second),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST", "localhost"),
		DBPort:         opt("DB_PORT", "5432"),
		DBName:         opt("DB_NAME", ""),
		DBUser:         opt("DB_USER", ""),
		DBPassword:     getenv("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: dur("DB_CONNECT_TIMEOUT", 5*time.Second),
	}
	if raw := strings.TrimSpace(getenv("DB_POOL_MAX_CONNS")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			invalid = append(invalid, "DB_POOL_MAX_CONNS")
		} else {
			cfg.Database.PoolMaxConns = int32(n)
		}
	}

	cfg.Session = SessionConfig{
		Secret:     strings.TrimSpace(getenv("SESSION_SECRET")),
		TTL:        dur("SESSION_TTL", 720*time.Hour),
		CookieName: opt("SESSION_COOKIE", "tas_session"),
		Secure:     flag("SESSION_COOKIE_SECURE", false),

		ProfileCacheSize: 10000,
		ProfileCacheTTL:  dur("PROFILE_CACHE_TTL", 30*time.Minute),
	}
	if raw := strings.TrimSpace(getenv("PROFILE_CACHE_SIZE")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			invalid = append(invalid, "PROFILE_CACHE_SIZE")
		} else {
			cfg.Session.ProfileCacheSize = n
		}
	}
	if cfg.Session.ProfileCacheTTL > cfg.Session.TTL {
		cfg.Session.ProfileCacheTTL = cfg.Session.TTL
	}
	if cfg.Session.Secret == "" {
		if cfg.App.Environment == EnvDevelopment {
			cfg.Session.Secret = "development-only-session-secret"
		} else {
			missing = append(missing, "SESSION_SECRET")
		}
	}

	if cfg.Store.Backend == StorePostgres {
		if cfg.Database.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
		if cfg.Database.DBUser == "" {
			missing = append(missing, "DB_USER")
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
