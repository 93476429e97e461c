package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host:    "127.0.0.1",
	Port:    "5432",
	User:    "myuser",
	Pass:    "mypassword",
	Name:    "dispatch",
	SSLMode: "disable",
}

var defaultKafka = Kafka{
	GroupID:       "drillflow-dispatch",
	OrdersTopic:   "orders.events",
	OffersTopic:   "dispatch.offers",
	OutcomesTopic: "dispatch.outcomes",
}

var defaultDispatch = Dispatch{
	OfferTTL:         300 * time.Second,
	SweepInterval:    5 * time.Second,
	DispatchTimeout:  5 * time.Second,
	Concurrency:      8,
	OperationTimeout: 3 * time.Second,
	MaxCandidates:    0,
	RankMode:         "rating",
	QuotaBackend:     QuotaPostgres,
	TimeZone:         "UTC",
}

var defaultNotify = Notify{
	Backend:     NotifyLog,
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled: true,
	Rate:    20,
	Burst:   40,
	TTL:     10 * time.Minute,
	MaxKeys: 10000,
}

var defaultLog = Log{
	Level:  "info",
	Format: "json",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultDispatch returns the default distribution settings.
func DefaultDispatch() Dispatch {
	return defaultDispatch
}

// DefaultNotify returns the default notifier settings.
func DefaultNotify() Notify {
	return defaultNotify
}
