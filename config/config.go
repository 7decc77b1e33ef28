// Package config loads the publisher and consumer TOML configuration
// files and applies their defaults.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/aditya-git16/lithos/state"
)

// Defaults applied to any field a TOML document omits.
const (
	DefaultRingPath = "/tmp/lithos_md_bus"
	DefaultCapacity = 1 << 16 // 65536
	DefaultLogLevel = "info"
)

// ConnectionConfig is one configured exchange endpoint.
type ConnectionConfig struct {
	URL      string `toml:"url"`
	SymbolID uint16 `toml:"symbol_id"`
}

// PublisherConfig configures the publisher binary.
type PublisherConfig struct {
	RingPath    string             `toml:"ring_path"`
	Capacity    uint64             `toml:"capacity"`
	LogLevel    string             `toml:"log_level"`
	Connections []ConnectionConfig `toml:"connections"`
}

// ConsumerConfig configures the consumer binary.
type ConsumerConfig struct {
	RingPath string `toml:"ring_path"`
	LogLevel string `toml:"log_level"`
}

// ReadError distinguishes "the file could not be read" from a syntax
// error, so callers (and log lines) can tell a missing file from a typo.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("config: failed to read %q: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// ParseError wraps a TOML syntax error.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: failed to parse %q: %v", e.Path, e.Err)
}
func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a config value that parsed fine but is out of
// range for the rest of the system to use safely.
type ValidationError struct {
	Path string
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s (in %q)", e.Msg, e.Path)
}

// LoadEnv loads an optional .env file from envPath, so operators
// can override the shared-memory ring path (LITHOS_RING_PATH) or the
// config file location itself (LITHOS_CONFIG) without editing TOML, and
// without requiring every deployment to export real environment
// variables. A missing .env is not an error — it's an optional
// convenience layer.
func LoadEnv(envPath string) {
	_ = godotenv.Load(envPath)
}

// LoadPublisher reads and parses a PublisherConfig from path, applying
// defaults for any field the TOML document omits, and rejects any
// connection whose symbol id falls outside the range the consumer's
// per-symbol state table can index.
func LoadPublisher(path string) (*PublisherConfig, error) {
	cfg := &PublisherConfig{
		RingPath: DefaultRingPath,
		Capacity: DefaultCapacity,
		LogLevel: DefaultLogLevel,
	}
	if err := load(path, cfg); err != nil {
		return nil, err
	}
	for _, c := range cfg.Connections {
		if int(c.SymbolID) >= state.MaxSymbols {
			return nil, &ValidationError{
				Path: path,
				Msg:  fmt.Sprintf("connection %q: symbol_id %d is out of range (must be < %d)", c.URL, c.SymbolID, state.MaxSymbols),
			}
		}
	}
	return cfg, nil
}

// LoadConsumer reads and parses a ConsumerConfig from path, applying
// defaults for any field the TOML document omits.
func LoadConsumer(path string) (*ConsumerConfig, error) {
	cfg := &ConsumerConfig{
		RingPath: DefaultRingPath,
		LogLevel: DefaultLogLevel,
	}
	if err := load(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return &ReadError{Path: path, Err: err}
	}
	if err := toml.Unmarshal(b, out); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}
