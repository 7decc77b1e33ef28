// Package harness wires together the publisher's per-connection worker
// goroutines: it creates the ring file once, spawns one worker per
// configured connection, and waits for them.
//
// Built on golang.org/x/sync/errgroup rather than a bare sync.WaitGroup:
// WithContext gives every worker a context that's canceled the moment any
// one of them returns a non-nil error, fanning cancellation out instead of
// leaving siblings running against a ring nobody is consuming from
// anymore.
package harness

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aditya-git16/lithos/publisher"
	"github.com/aditya-git16/lithos/ring"
)

// Run creates the ring file at ringPath (capacity slots) and spawns one
// worker goroutine per connection, each publishing into that ring. It
// blocks until every worker has returned or ctx is canceled.
func Run(ctx context.Context, ringPath string, capacity uint64, connections []publisher.Connection) error {
	w, err := ring.CreateWriter(ringPath, capacity)
	if err != nil {
		return err
	}
	// The harness only needs the writer to materialize the ring file;
	// each worker opens its own handle via publisher.RunWorker.
	w.Close()

	g, gctx := errgroup.WithContext(ctx)
	for _, conn := range connections {
		conn := conn
		g.Go(func() error {
			return publisher.RunWorker(gctx, conn, ringPath)
		})
	}
	return g.Wait()
}
