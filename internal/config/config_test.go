package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, noEnv)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":8080" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.CatalogURL != "" {
		t.Fatalf("expected empty catalog URL, got %q", cfg.CatalogURL)
	}
	if cfg.DeliveryFee != 40 {
		t.Fatalf("unexpected delivery fee %v", cfg.DeliveryFee)
	}
	if cfg.DispatchAfter != 45*time.Second || cfg.DeliverAfter != 90*time.Second {
		t.Fatalf("unexpected courier timings %v %v", cfg.DispatchAfter, cfg.DeliverAfter)
	}
	if cfg.WorkerPoolSize != 4 || cfg.MaxOrdersBatch != 32 {
		t.Fatalf("unexpected worker settings %d %d", cfg.WorkerPoolSize, cfg.MaxOrdersBatch)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected token TTL %v", cfg.TokenTTL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"RUN_ADDRESS":            ":9090",
		"CATALOG_URL":            "http://catalog.local",
		"DELIVERY_FEE":           "25.5",
		"COURIER_DISPATCH_AFTER": "10s",
		"AUTH_LATENCY":           "300ms",
	}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.CatalogURL != "http://catalog.local" {
		t.Fatalf("unexpected catalog URL %q", cfg.CatalogURL)
	}
	if cfg.DeliveryFee != 25.5 {
		t.Fatalf("unexpected delivery fee %v", cfg.DeliveryFee)
	}
	if cfg.DispatchAfter != 10*time.Second {
		t.Fatalf("unexpected dispatch-after %v", cfg.DispatchAfter)
	}
	if cfg.AuthLatency != 300*time.Millisecond {
		t.Fatalf("unexpected auth latency %v", cfg.AuthLatency)
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":7070", "-delivery-fee", "10", "-dispatch-after", "5s"},
		envMap(map[string]string{"RUN_ADDRESS": ":9090", "DELIVERY_FEE": "99"}),
	)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Fatalf("flag should win over env, got %q", cfg.RunAddress)
	}
	if cfg.DeliveryFee != 10 {
		t.Fatalf("flag should win over env, got %v", cfg.DeliveryFee)
	}
	if cfg.DispatchAfter != 5*time.Second {
		t.Fatalf("unexpected dispatch-after %v", cfg.DispatchAfter)
	}
}

func TestLoadAuthSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, envMap(map[string]string{"AUTH_SECRET_FILE": path}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.AuthSecret != "file-secret" {
		t.Fatalf("unexpected secret %q", cfg.AuthSecret)
	}
}

func TestLoadRejectsNegativeFee(t *testing.T) {
	if _, err := load([]string{"-delivery-fee", "-1"}, noEnv); err == nil {
		t.Fatalf("expected error for negative fee")
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	if _, err := load([]string{"-dispatch-after", "soon"}, noEnv); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadNonPositiveDurationsFallBack(t *testing.T) {
	cfg, err := load([]string{"-poll-interval", "0s", "-dispatch-after", "0s"}, noEnv)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.CourierPollInterval != 10*time.Second || cfg.DispatchAfter != 45*time.Second {
		t.Fatalf("expected defaults restored, got %v %v", cfg.CourierPollInterval, cfg.DispatchAfter)
	}
}
