package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WAREHOUSE_DATABASE_URL", "postgres://localhost/warehouse")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Alerts.DebounceWindow != 300*time.Millisecond {
		t.Errorf("expected default debounce window 300ms, got %v", cfg.Alerts.DebounceWindow)
	}
	if cfg.Alerts.SendInterval != time.Second {
		t.Errorf("expected default send interval 1s, got %v", cfg.Alerts.SendInterval)
	}
	if cfg.SMS.Enabled {
		t.Error("sms should be disabled by default")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  url: postgres://localhost/warehouse
server:
  port: 9090
sms:
  enabled: true
  destination: "5551234567"
  gateway_domain: txt.carrier.com
alerts:
  debounce_window: 150ms
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.SMS.Destination != "5551234567" {
		t.Errorf("expected destination from file, got %q", cfg.SMS.Destination)
	}
	if cfg.Alerts.DebounceWindow != 150*time.Millisecond {
		t.Errorf("expected debounce window 150ms, got %v", cfg.Alerts.DebounceWindow)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("expected error when database.url is missing")
	}
}

func TestLoad_SMSValidation(t *testing.T) {
	t.Setenv("WAREHOUSE_DATABASE_URL", "postgres://localhost/warehouse")
	t.Setenv("WAREHOUSE_SMS_ENABLED", "true")

	if _, err := Load(""); err == nil {
		t.Error("expected error when sms is enabled without a destination")
	}

	t.Setenv("WAREHOUSE_SMS_DESTINATION", "not-a-number")
	if _, err := Load(""); err == nil {
		t.Error("expected error for an invalid destination number")
	}

	t.Setenv("WAREHOUSE_SMS_DESTINATION", "5551234567")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed with a valid destination: %v", err)
	}
	if !cfg.SMS.Enabled {
		t.Error("expected sms enabled from environment")
	}
}
