package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration assembled from the environment.
type Config struct {
	Server    Server
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Reconcile ReconcileConfig
	// Quota holds the raw quota option keys. Validation lives in
	// internal/tenant/quota so a missing key fails startup there.
	Quota map[string]string
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	AdminToken      string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// DatabaseConfig selects the Postgres driver and pool sizing. An empty URL
// runs the process on in-memory stores.
type DatabaseConfig struct {
	Driver       string
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig configures the sink client. An empty URL selects in-memory sinks.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the search index producer. No brokers selects the
// in-memory index.
type KafkaConfig struct {
	Brokers    []string
	IndexTopic string
	ClientID   string
	Partitions int32
	Replicas   int16
}

type ReconcileConfig struct {
	Interval  time.Duration
	BatchSize int
}

// QuotaKeys are the quota option names recognised from the environment or
// the properties file named by ROSTER_QUOTA_FILE.
var QuotaKeys = []string{
	"storage.basic.max.size",
	"storage.premium.max.size",
	"storage.unlimited.max.size",
	"subscription.level.basic",
	"subscription.level.premium",
	"subscription.level.unlimited",
}

// FromEnv builds the process configuration so main stays lean.
func FromEnv() (Config, error) {
	quota, err := quotaOptions(os.Getenv)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Server: Server{
			Addr:            envOr("ROSTER_ADDR", ":8080"),
			AdminToken:      os.Getenv("ROSTER_ADMIN_TOKEN"),
			LogLevel:        envOr("LOG_LEVEL", "info"),
			LogFormat:       envOr("LOG_FORMAT", "json"),
			ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:       envOr("DATABASE_DRIVER", "postgres"),
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DATABASE_MAX_OPEN_CONNS", 20),
			MaxIdleConns: envInt("DATABASE_MAX_IDLE_CONNS", 5),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(os.Getenv("KAFKA_BROKERS")),
			IndexTopic: envOr("KAFKA_INDEX_TOPIC", "account-index"),
			ClientID:   envOr("KAFKA_CLIENT_ID", "roster"),
			Partitions: int32(envInt("KAFKA_INDEX_PARTITIONS", 3)),
			Replicas:   int16(envInt("KAFKA_INDEX_REPLICAS", 1)),
		},
		Reconcile: ReconcileConfig{
			Interval:  envDuration("RECONCILE_INTERVAL", 15*time.Minute),
			BatchSize: envInt("RECONCILE_BATCH_SIZE", 200),
		},
		Quota: quota,
	}, nil
}

// quotaOptions reads the properties file first, then lets environment
// variables override individual keys. Keys absent from both are left out.
func quotaOptions(getenv func(string) string) (map[string]string, error) {
	opts := make(map[string]string, len(QuotaKeys))
	if path := getenv("ROSTER_QUOTA_FILE"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open quota file: %w", err)
		}
		defer f.Close()
		props, err := ParseProperties(f)
		if err != nil {
			return nil, fmt.Errorf("parse quota file %s: %w", path, err)
		}
		for _, key := range QuotaKeys {
			if v, ok := props[key]; ok {
				opts[key] = v
			}
		}
	}
	for _, key := range QuotaKeys {
		if v := getenv(EnvName(key)); v != "" {
			opts[key] = v
		}
	}
	return opts, nil
}

// EnvName maps a dotted option key to its environment variable name,
// e.g. storage.basic.max.size -> STORAGE_BASIC_MAX_SIZE.
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
