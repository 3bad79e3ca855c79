package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	CatalogURL          string
	AuthSecret          string
	TokenTTL            time.Duration
	AuthLatency         time.Duration
	DeliveryFee         float64
	CourierPollInterval time.Duration
	DispatchAfter       time.Duration
	DeliverAfter        time.Duration
	WorkerPoolSize      int
	MaxOrdersBatch      int
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultAuthSecret          = "change-me-in-production"
	defaultTokenTTL            = 24 * time.Hour
	defaultDeliveryFee         = 40.0
	defaultCourierPollInterval = 10 * time.Second
	defaultDispatchAfter       = 45 * time.Second
	defaultDeliverAfter        = 90 * time.Second
	defaultWorkerPoolSize      = 4
	defaultMaxOrdersBatch      = 32
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		CatalogURL:          getString(lookup, "CATALOG_URL", ""),
		AuthSecret:          getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		TokenTTL:            getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		AuthLatency:         getDuration(lookup, "AUTH_LATENCY", 0),
		DeliveryFee:         getFloat(lookup, "DELIVERY_FEE", defaultDeliveryFee),
		CourierPollInterval: getDuration(lookup, "COURIER_POLL_INTERVAL", defaultCourierPollInterval),
		DispatchAfter:       getDuration(lookup, "COURIER_DISPATCH_AFTER", defaultDispatchAfter),
		DeliverAfter:        getDuration(lookup, "COURIER_DELIVER_AFTER", defaultDeliverAfter),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		MaxOrdersBatch:      getInt(lookup, "COURIER_BATCH_SIZE", defaultMaxOrdersBatch),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.CourierPollInterval.String()
		dispatchAfterStr   = cfg.DispatchAfter.String()
		deliverAfterStr    = cfg.DeliverAfter.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.CatalogURL, "catalog", cfg.CatalogURL, "Restaurant catalog URL (built-in seed when empty)")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.Float64Var(&cfg.DeliveryFee, "delivery-fee", cfg.DeliveryFee, "Flat delivery fee added to non-empty carts")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent courier workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between courier simulator ticks")
	fs.StringVar(&dispatchAfterStr, "dispatch-after", dispatchAfterStr, "Order age before it goes out for delivery")
	fs.StringVar(&deliverAfterStr, "deliver-after", deliverAfterStr, "Order age before it is marked delivered")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.MaxOrdersBatch, "poll-batch", cfg.MaxOrdersBatch, "Maximum orders per courier tick")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CourierPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.DispatchAfter, err = time.ParseDuration(dispatchAfterStr); err != nil {
		return nil, fmt.Errorf("invalid dispatch-after: %w", err)
	}

	if cfg.DeliverAfter, err = time.ParseDuration(deliverAfterStr); err != nil {
		return nil, fmt.Errorf("invalid deliver-after: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxOrdersBatch <= 0 {
		cfg.MaxOrdersBatch = defaultMaxOrdersBatch
	}

	if cfg.CourierPollInterval <= 0 {
		cfg.CourierPollInterval = defaultCourierPollInterval
	}

	if cfg.DispatchAfter <= 0 {
		cfg.DispatchAfter = defaultDispatchAfter
	}

	if cfg.DeliverAfter <= 0 {
		cfg.DeliverAfter = defaultDeliverAfter
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.DeliveryFee < 0 {
		return nil, fmt.Errorf("delivery fee must not be negative")
	}

	if cfg.AuthLatency < 0 {
		return nil, fmt.Errorf("auth latency must not be negative")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
