// Command publisher runs the market-data publisher: one websocket worker
// per configured exchange connection, all feeding a single shared-memory
// broadcast ring.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aditya-git16/lithos/config"
	"github.com/aditya-git16/lithos/harness"
	"github.com/aditya-git16/lithos/publisher"
	"github.com/aditya-git16/lithos/quote"
)

func main() {
	log.Println("lithos publisher starting...")

	config.LoadEnv(".env")
	cfgPath := "publisher.toml"
	if p := os.Getenv("LITHOS_CONFIG"); p != "" {
		cfgPath = p
	}

	cfg, err := config.LoadPublisher(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config %s: %v", cfgPath, err)
	}

	if p := os.Getenv("LITHOS_RING_PATH"); p != "" {
		cfg.RingPath = p
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	connections := make([]publisher.Connection, 0, len(cfg.Connections))
	for _, c := range cfg.Connections {
		connections = append(connections, publisher.Connection{
			URL:      c.URL,
			SymbolID: quote.SymbolId(c.SymbolID),
		})
	}

	log.Printf("ring: %s (capacity %d), connections: %d", cfg.RingPath, cfg.Capacity, len(connections))

	if err := harness.Run(ctx, cfg.RingPath, cfg.Capacity, connections); err != nil && ctx.Err() == nil {
		log.Fatalf("publisher: %v", err)
	}
}
