package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Quota and notifier backends.
const (
	QuotaPostgres = "postgres"
	QuotaMemory   = "memory"

	NotifyKafka = "kafka"
	NotifyLog   = "log"
)

// Config stores service settings.
type Config struct {
	Port      int
	DB        DB
	Kafka     Kafka
	Dispatch  Dispatch
	Notify    Notify
	RateLimit RateLimit
	Log       Log
}

// DB stores Postgres connection settings.
type DB struct {
	Host    string
	Port    string
	User    string
	Pass    string
	Name    string
	SSLMode string
	// AutoMigrate applies pending schema migrations on startup.
	AutoMigrate bool
}

// DSN returns a postgres:// connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Pass),
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Kafka stores broker and topic settings. Empty Brokers disables Kafka.
type Kafka struct {
	Brokers       []string
	GroupID       string
	OrdersTopic   string
	OffersTopic   string
	OutcomesTopic string
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// Dispatch stores distribution engine knobs.
type Dispatch struct {
	OfferTTL         time.Duration
	SweepInterval    time.Duration
	DispatchTimeout  time.Duration
	Concurrency      int
	OperationTimeout time.Duration
	MaxCandidates    int
	RankMode         string
	RequireLocation  bool
	QuotaBackend     string
	TimeZone         string
}

// Location resolves TimeZone; quota days are counted in it.
func (d Dispatch) Location() (*time.Location, error) {
	return time.LoadLocation(d.TimeZone)
}

// Notify stores notifier selection and outcome retry settings.
type Notify struct {
	Backend     string
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	Enabled bool
	Rate    float64
	Burst   int
	TTL     time.Duration
	MaxKeys int
}

// Log stores logger settings.
type Log struct {
	Level  string
	Format string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := Config{
		Port:      defaultPort,
		DB:        defaultDB,
		Kafka:     defaultKafka,
		Dispatch:  defaultDispatch,
		Notify:    defaultNotify,
		RateLimit: defaultRateLimit,
		Log:       defaultLog,
	}

	e := envReader{}
	e.int("PORT", &cfg.Port)

	e.str("POSTGRES_HOST", &cfg.DB.Host)
	e.str("POSTGRES_PORT", &cfg.DB.Port)
	e.str("POSTGRES_USER", &cfg.DB.User)
	e.str("POSTGRES_PASSWORD", &cfg.DB.Pass)
	e.str("POSTGRES_DB", &cfg.DB.Name)
	e.str("POSTGRES_SSLMODE", &cfg.DB.SSLMode)
	e.bool("POSTGRES_AUTO_MIGRATE", &cfg.DB.AutoMigrate)

	e.list("KAFKA_BROKERS", &cfg.Kafka.Brokers)
	e.str("KAFKA_GROUP_ID", &cfg.Kafka.GroupID)
	e.str("KAFKA_ORDERS_TOPIC", &cfg.Kafka.OrdersTopic)
	e.str("KAFKA_OFFERS_TOPIC", &cfg.Kafka.OffersTopic)
	e.str("KAFKA_OUTCOMES_TOPIC", &cfg.Kafka.OutcomesTopic)

	e.duration("OFFER_TTL", &cfg.Dispatch.OfferTTL)
	e.duration("OFFER_SWEEP_INTERVAL", &cfg.Dispatch.SweepInterval)
	e.duration("DISPATCH_TIMEOUT", &cfg.Dispatch.DispatchTimeout)
	e.int("DISPATCH_CONCURRENCY", &cfg.Dispatch.Concurrency)
	e.duration("OPERATION_TIMEOUT", &cfg.Dispatch.OperationTimeout)
	e.int("MAX_CANDIDATES", &cfg.Dispatch.MaxCandidates)
	e.str("RANK_MODE", &cfg.Dispatch.RankMode)
	e.bool("REQUIRE_LOCATION", &cfg.Dispatch.RequireLocation)
	e.str("QUOTA_BACKEND", &cfg.Dispatch.QuotaBackend)
	e.str("DISPATCH_TIMEZONE", &cfg.Dispatch.TimeZone)

	e.str("NOTIFY_BACKEND", &cfg.Notify.Backend)
	e.int("NOTIFY_RETRY_ATTEMPTS", &cfg.Notify.MaxAttempts)
	e.duration("NOTIFY_RETRY_BASE_DELAY", &cfg.Notify.BaseDelay)
	e.duration("NOTIFY_RETRY_MAX_DELAY", &cfg.Notify.MaxDelay)

	e.bool("RATE_LIMIT_ENABLED", &cfg.RateLimit.Enabled)
	e.float("RATE_LIMIT_RATE", &cfg.RateLimit.Rate)
	e.int("RATE_LIMIT_BURST", &cfg.RateLimit.Burst)
	e.duration("RATE_LIMIT_TTL", &cfg.RateLimit.TTL)
	e.int("RATE_LIMIT_MAX_KEYS", &cfg.RateLimit.MaxKeys)

	e.str("LOG_LEVEL", &cfg.Log.Level)
	e.str("LOG_FORMAT", &cfg.Log.Format)

	if err := errors.Join(e.errs...); err != nil {
		return nil, err
	}

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	fs.DurationVar(&cfg.Dispatch.OfferTTL, "offer-ttl", cfg.Dispatch.OfferTTL, "how long an offer stays open")
	fs.StringVar(&cfg.Dispatch.RankMode, "rank-mode", cfg.Dispatch.RankMode, "ranking mode: rating or weighted")
	fs.StringVar(&cfg.Dispatch.QuotaBackend, "quota-backend", cfg.Dispatch.QuotaBackend, "daily quota store: postgres or memory")
	fs.StringVar(&cfg.Notify.Backend, "notify-backend", cfg.Notify.Backend, "notifier: kafka or log")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if p, err := strconv.Atoi(c.DB.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid postgres port: %q", c.DB.Port)
	}
	d := c.Dispatch
	if d.OfferTTL <= 0 || d.SweepInterval <= 0 || d.DispatchTimeout <= 0 || d.OperationTimeout <= 0 {
		return errors.New("dispatch durations must be positive")
	}
	if d.Concurrency <= 0 {
		return fmt.Errorf("invalid dispatch concurrency: %d", d.Concurrency)
	}
	if d.MaxCandidates < 0 {
		return fmt.Errorf("invalid max candidates: %d", d.MaxCandidates)
	}
	if d.RankMode != "rating" && d.RankMode != "weighted" {
		return fmt.Errorf("unknown rank mode %q", d.RankMode)
	}
	if d.QuotaBackend != QuotaPostgres && d.QuotaBackend != QuotaMemory {
		return fmt.Errorf("unknown quota backend %q", d.QuotaBackend)
	}
	if _, err := d.Location(); err != nil {
		return fmt.Errorf("dispatch timezone: %w", err)
	}
	if c.Notify.Backend != NotifyKafka && c.Notify.Backend != NotifyLog {
		return fmt.Errorf("unknown notify backend %q", c.Notify.Backend)
	}
	if c.Notify.Backend == NotifyKafka && !c.Kafka.Enabled() {
		return errors.New("notify backend kafka requires KAFKA_BROKERS")
	}
	return nil
}

// envReader collects parse errors so that every bad variable is reported at once.
type envReader struct{ errs []error }

func (e *envReader) lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (e *envReader) str(key string, dst *string) {
	if v, ok := e.lookup(key); ok {
		*dst = v
	}
}

func (e *envReader) list(key string, dst *[]string) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}

func (e *envReader) int(key string, dst *int) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func (e *envReader) float(key string, dst *float64) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = f
}

func (e *envReader) bool(key string, dst *bool) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = b
}

func (e *envReader) duration(key string, dst *time.Duration) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = d
}
