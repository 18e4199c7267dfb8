package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "5001" {
		t.Fatalf("expected default port 5001, got %q", cfg.Port)
	}
	if cfg.MapsBaseURL != "https://maps.googleapis.com/maps/api" {
		t.Fatalf("unexpected maps base url %q", cfg.MapsBaseURL)
	}
	if cfg.MapsHTTPTimeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", cfg.MapsHTTPTimeout)
	}
	if cfg.VisitHistoryLimit != 15 {
		t.Fatalf("expected history limit 15, got %d", cfg.VisitHistoryLimit)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GOOGLE_API_KEY", "secret")
	t.Setenv("MAPS_HTTP_TIMEOUT", "5s")
	t.Setenv("VISIT_HISTORY_LIMIT", "3")
	t.Setenv("POSTGRES_URL", "postgres://example")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("expected override port")
	}
	if cfg.GoogleAPIKey != "secret" {
		t.Fatalf("expected override api key")
	}
	if cfg.MapsHTTPTimeout != 5*time.Second {
		t.Fatalf("expected override timeout, got %v", cfg.MapsHTTPTimeout)
	}
	if cfg.VisitHistoryLimit != 3 {
		t.Fatalf("expected override limit, got %d", cfg.VisitHistoryLimit)
	}
	if cfg.PostgresURL != "postgres://example" {
		t.Fatalf("expected override postgres")
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	if err := (Config{}).Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if err := (Config{GoogleAPIKey: "k"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocationFallback(t *testing.T) {
	loc := Config{Timezone: "Not/AZone"}.Location()
	_, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
	if offset != 2*3600 {
		t.Fatalf("expected fixed +02:00 fallback, got %d", offset)
	}
}
