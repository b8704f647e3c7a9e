// Package config loads the service configuration from environment variables.
// Every variable has a default; a malformed or out-of-range value fails Load
// with all problems reported together.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry tracing settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// DBConfig selects and tunes the analytics store.
type DBConfig struct {
	Driver       string        // DB_DRIVER: postgres|sqlite
	URL          string        // DATABASE_URL (postgres DSN)
	Path         string        // DB_PATH (sqlite file)
	AutoMigrate  bool          // DB_AUTO_MIGRATE, local sqlite only
	QueryTimeout time.Duration // DB_QUERY_TIMEOUT per operation
	MaxOpenConns int           // DB_MAX_OPEN_CONNS
}

// TimeConfig carries the named time-zone policies.
type TimeConfig struct {
	FixedOffset   string            // TZ_FIXED_OFFSET, e.g. "+09:00"
	StoreTimezone string            // STORE_TIMEZONE, IANA name
	Overrides     map[string]string // TZ_POLICY_OVERRIDES, op=fixed|store
}

// Validate checks the offset, the zone name and every override.
func (tc TimeConfig) Validate() error {
	var errs []error
	if _, err := ParseOffset(tc.FixedOffset); err != nil {
		errs = append(errs, err)
	}
	if _, err := time.LoadLocation(tc.StoreTimezone); err != nil {
		errs = append(errs, fmt.Errorf("STORE_TIMEZONE: %w", err))
	}
	for op, p := range tc.Overrides {
		if p != "fixed" && p != "store" {
			errs = append(errs, fmt.Errorf("TZ_POLICY_OVERRIDES: %s must be fixed or store, got %q", op, p))
		}
	}
	return errors.Join(errs...)
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration // some reports fan out
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	GinMode           string // debug|release|test

	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool
	SwaggerEnabled bool
	APIBasePath    string

	DB DBConfig

	// Reports
	Time     TimeConfig
	QuestIDs []string // QUEST_IDS, the quests shown on the completion panel

	RateRPS   float64
	RateBurst int

	CORS     CORSConfig
	Security SecurityConfig

	OTEL OTELConfig
}

// DefaultQuestIDs are the daily quests tracked when QUEST_IDS is unset.
var DefaultQuestIDs = []string{"daily_login", "daily_chat", "daily_gift", "daily_card"}

// MustLoad is Load for main; it panics on error.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the environment, applies defaults and normalization, and
// validates the result.
func Load() (Config, error) {
	var e env
	cfg := Config{
		Port:              e.strVar("PORT", "8080"),
		ReadTimeout:       e.durVar("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: e.durVar("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      e.durVar("WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:       e.durVar("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    e.intVar("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(e.strVar("GIN_MODE", "release")),

		LogLevel:       strings.ToLower(e.strVar("LOG_LEVEL", "info")),
		LogPretty:      e.boolVar("LOG_PRETTY", false),
		SwaggerEnabled: e.boolVar("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(e.strVar("API_BASE_PATH", "/api/v1")),

		DB: DBConfig{
			Driver:       strings.ToLower(e.strVar("DB_DRIVER", "sqlite")),
			URL:          e.strVar("DATABASE_URL", ""),
			Path:         e.strVar("DB_PATH", "insights.db"),
			AutoMigrate:  e.boolVar("DB_AUTO_MIGRATE", false),
			QueryTimeout: e.durVar("DB_QUERY_TIMEOUT", 30*time.Second),
			MaxOpenConns: e.intVar("DB_MAX_OPEN_CONNS", 10),
		},

		Time: TimeConfig{
			FixedOffset:   e.strVar("TZ_FIXED_OFFSET", "+09:00"),
			StoreTimezone: e.strVar("STORE_TIMEZONE", "UTC"),
			Overrides:     splitPairs(e.strVar("TZ_POLICY_OVERRIDES", "")),
		},
		QuestIDs: splitCSV(e.strVar("QUEST_IDS", "")),

		RateRPS:   e.floatVar("RATE_RPS", 10),
		RateBurst: e.intVar("RATE_BURST", 40),

		CORS: CORSConfig{AllowedOrigins: splitCSV(e.strVar("CORS_ALLOWED_ORIGINS", ""))},
		Security: SecurityConfig{
			EnableHSTS: e.boolVar("ENABLE_HSTS", false),
			HSTSMaxAge: e.durVar("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		OTEL: OTELConfig{
			Enabled:     e.boolVar("OTEL_ENABLED", false),
			Endpoint:    e.strVar("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    e.boolVar("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: e.strVar("OTEL_SERVICE_NAME", "companion-insights"),
			SampleRatio: e.floatVar("OTEL_TRACES_SAMPLER_ARG", 1),
		},
	}
	cfg.normalize()

	errs := append(e.errs, cfg.validate()...)
	if err := cfg.Time.Validate(); err != nil {
		errs = append(errs, err)
	}
	return cfg, errors.Join(errs...)
}

func (c *Config) normalize() {
	if c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		c.GinMode = "release"
	}
	switch c.DB.Driver {
	case "postgresql", "pg":
		c.DB.Driver = "postgres"
	case "sqlite3":
		c.DB.Driver = "sqlite"
	}
	if len(c.QuestIDs) == 0 {
		c.QuestIDs = append([]string(nil), DefaultQuestIDs...)
	}
}

func (c Config) validate() []error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, fatal, panic; got %q", c.LogLevel))
	}
	check(strings.TrimSpace(c.Port) != "", "PORT must not be empty")
	check(c.ReadTimeout > 0 && c.ReadHeaderTimeout > 0 && c.WriteTimeout > 0 && c.IdleTimeout > 0,
		"timeouts must be positive durations")
	check(c.MaxHeaderBytes > 0, "MAX_HEADER_BYTES must be > 0")

	switch c.DB.Driver {
	case "postgres":
		check(strings.TrimSpace(c.DB.URL) != "", "DATABASE_URL must be set when DB_DRIVER=postgres")
	case "sqlite":
		check(strings.TrimSpace(c.DB.Path) != "", "DB_PATH must not be empty")
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DB.Driver))
	}
	check(c.DB.QueryTimeout > 0, "DB_QUERY_TIMEOUT must be > 0")
	check(c.DB.MaxOpenConns >= 1, "DB_MAX_OPEN_CONNS must be >= 1")

	check(c.RateRPS >= 0, "RATE_RPS must be >= 0")
	check(c.RateBurst >= 1, "RATE_BURST must be >= 1")
	check(c.Security.HSTSMaxAge >= 0, "HSTS_MAX_AGE must be >= 0")
	check(c.OTEL.SampleRatio >= 0 && c.OTEL.SampleRatio <= 1, "OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	return errs
}

// ParseOffset parses a "+HH:MM" / "-HH:MM" UTC offset into seconds east of UTC.
func ParseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return 0, fmt.Errorf("TZ_FIXED_OFFSET must look like +09:00, got %q", s)
	}
	h, err1 := strconv.Atoi(s[1:3])
	m, err2 := strconv.Atoi(s[4:6])
	if err1 != nil || err2 != nil || h > 14 || m > 59 {
		return 0, fmt.Errorf("TZ_FIXED_OFFSET out of range: %q", s)
	}
	secs := h*3600 + m*60
	if s[0] == '-' {
		secs = -secs
	}
	return secs, nil
}

// env reads typed variables and remembers every value that failed to parse.
// Unset and empty variables take the default.
type env struct {
	errs []error
}

func lookup[T any](e *env, key string, def T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return def
	}
	v, err := parse(strings.TrimSpace(raw))
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: invalid value %q", key, raw))
		return def
	}
	return v
}

func (e *env) strVar(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (e *env) intVar(key string, def int) int { return lookup(e, key, def, strconv.Atoi) }

func (e *env) durVar(key string, def time.Duration) time.Duration {
	return lookup(e, key, def, time.ParseDuration)
}

func (e *env) floatVar(key string, def float64) float64 {
	return lookup(e, key, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

func (e *env) boolVar(key string, def bool) bool { return lookup(e, key, def, parseBool) }

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "on":
		return true, nil
	case "0", "false", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// splitPairs parses "a=x,b=y" into a map with lowercased values. Malformed
// entries are skipped.
func splitPairs(s string) map[string]string {
	out := map[string]string{}
	for _, p := range splitCSV(s) {
		k, v, ok := strings.Cut(p, "=")
		k, v = strings.TrimSpace(k), strings.ToLower(strings.TrimSpace(v))
		if ok && k != "" && v != "" {
			out[k] = v
		}
	}
	return out
}

// normalizeBasePath ensures a leading '/' and strips trailing ones; blank
// means root.
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	return "/" + p
}
