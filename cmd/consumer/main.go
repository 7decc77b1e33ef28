// Command consumer attaches to a publisher's shared-memory broadcast ring
// and drains it into an in-process per-symbol state table.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aditya-git16/lithos/config"
	"github.com/aditya-git16/lithos/consumer"
	"github.com/aditya-git16/lithos/ring"
)

// diagInterval is how often the consumer reports its overrun count.
const diagInterval = 5 * time.Second

func main() {
	log.Println("lithos consumer starting...")

	config.LoadEnv(".env")
	cfgPath := "consumer.toml"
	if p := os.Getenv("LITHOS_CONFIG"); p != "" {
		cfgPath = p
	}

	cfg, err := config.LoadConsumer(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config %s: %v", cfgPath, err)
	}
	if p := os.Getenv("LITHOS_RING_PATH"); p != "" {
		cfg.RingPath = p
	}

	reader, err := ring.OpenReader(cfg.RingPath)
	if err != nil {
		log.Fatalf("consumer: open ring %s: %v", cfg.RingPath, err)
	}
	defer reader.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loop := consumer.New(reader)
	stop := make(chan struct{})

	go loop.Run(stop)
	go reportDiagnostics(ctx, reader)

	<-ctx.Done()
	close(stop)
	log.Println("consumer: shutting down")
}

func reportDiagnostics(ctx context.Context, reader *ring.Reader) {
	ticker := time.NewTicker(diagInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			log.Printf("consumer: overruns=%d", reader.Overruns())
		}
	}
}
