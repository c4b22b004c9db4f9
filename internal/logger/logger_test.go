package logger

import "testing"

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps on by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg = &Config{Level: "loud", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown level")
	}

	cfg = &Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLogger_WithComponent(t *testing.T) {
	log := NewDefault("test")
	child := log.WithComponent("store")
	if child == nil {
		t.Fatal("expected a child logger")
	}
	// The child must be independent of the parent.
	if child == log {
		t.Error("WithComponent must return a derived logger")
	}
}
