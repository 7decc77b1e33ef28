package publisher

import (
	"context"
	"fmt"
	"log"

	"github.com/aditya-git16/lithos/quote"
	"github.com/aditya-git16/lithos/ring"
	"nhooyr.io/websocket"
)

// Connection is one configured exchange endpoint: a source URL and the
// symbol id frames from it should be stamped with.
type Connection struct {
	URL      string
	SymbolID quote.SymbolId
}

// RunWorker opens a writer handle to ringPath, dials conn's websocket, and
// reads frames until ctx is canceled or the connection fails. A websocket
// I/O failure is logged at warn and ends the worker immediately — there
// is no reconnect here; an operator who wants a connection back has to
// restart the worker (or the whole process) themselves.
func RunWorker(ctx context.Context, conn Connection, ringPath string) error {
	w, err := ring.OpenWriter(ringPath)
	if err != nil {
		return fmt.Errorf("publisher: open ring for %s: %w", conn.URL, err)
	}
	defer w.Close()

	if err := connectAndRead(ctx, conn, w); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("warn: publisher: %s disconnected (%v), worker exiting", conn.URL, err)
		return err
	}
	return nil
}

func connectAndRead(ctx context.Context, conn Connection, w *ring.Writer) error {
	c, _, err := websocket.Dial(ctx, conn.URL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer c.CloseNow()

	log.Printf("publisher: connected to %s (symbol %d)", conn.URL, conn.SymbolID)

	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			return err
		}
		HandleFrame(string(data), conn.SymbolID, w)
	}
}
