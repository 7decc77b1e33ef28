package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPublisherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publisher.toml")
	body := `
log_level = "debug"

[[connections]]
url = "wss://example.test/ws"
symbol_id = 1
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadPublisher(path)
	if err != nil {
		t.Fatalf("LoadPublisher: %v", err)
	}
	if cfg.RingPath != DefaultRingPath {
		t.Errorf("RingPath = %q, want default %q (unset in TOML)", cfg.RingPath, DefaultRingPath)
	}
	if cfg.Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d, want default %d", cfg.Capacity, DefaultCapacity)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q (set in TOML)", cfg.LogLevel, "debug")
	}
	if len(cfg.Connections) != 1 || cfg.Connections[0].URL != "wss://example.test/ws" {
		t.Errorf("Connections = %+v, want one entry with the configured URL", cfg.Connections)
	}
}

func TestLoadPublisherMissingFile(t *testing.T) {
	_, err := LoadPublisher(filepath.Join(t.TempDir(), "missing.toml"))
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Errorf("err = %v (%T), want *ReadError", err, err)
	}
}

func TestLoadPublisherBadSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("this is not [valid toml"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := LoadPublisher(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("err = %v (%T), want *ParseError", err, err)
	}
}

func TestLoadPublisherRejectsOutOfRangeSymbol(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publisher.toml")
	body := `
[[connections]]
url = "wss://example.test/ws"
symbol_id = 300
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := LoadPublisher(path)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("err = %v (%T), want *ValidationError", err, err)
	}
}

func TestLoadConsumerDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consumer.toml")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadConsumer(path)
	if err != nil {
		t.Fatalf("LoadConsumer: %v", err)
	}
	if cfg.RingPath != DefaultRingPath {
		t.Errorf("RingPath = %q, want default %q", cfg.RingPath, DefaultRingPath)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, DefaultLogLevel)
	}
}
