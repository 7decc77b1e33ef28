// Package consumer implements the polling consumer loop that drains a
// ring reader into a per-symbol state table.
package consumer

import (
	"log"
	"runtime"

	"github.com/aditya-git16/lithos/quote"
	"github.com/aditya-git16/lithos/ring"
	"github.com/aditya-git16/lithos/state"
)

// Loop pairs a ring.Reader with a per-symbol state.Table and drains one
// against the other.
type Loop struct {
	Reader *ring.Reader
	States *state.Table
}

// New builds a Loop over an already-open reader and a fresh state table.
func New(reader *ring.Reader) *Loop {
	return &Loop{Reader: reader, States: state.NewTable()}
}

// Run drains until stop is closed. The operator is responsible for
// pinning this goroutine's OS thread to a dedicated core if jitter
// matters — the loop itself never sleeps; its only yield is the
// runtime.Gosched call Drain makes after each record.
func (l *Loop) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
			l.Drain()
		}
	}
}

// Drain repeatedly calls TryRead, applying each record to the state table
// and issuing a prefetch hint for the next slot, until the reader reports
// empty. Returns the count drained.
func (l *Loop) Drain() int {
	count := 0
	for {
		rec, ok := l.Reader.TryRead()
		if !ok {
			return count
		}
		l.process(rec)
		l.Reader.PrefetchNext()
		runtime.Gosched()
		count++
	}
}

func (l *Loop) process(rec quote.QuoteRecord) {
	if !l.States.Apply(rec) {
		log.Printf("warn: consumer: dropped record for out-of-range symbol %d", rec.SymbolId)
	}
}
