// Package state holds the consumer's dense per-symbol market state table.
//
// Lookups happen on the hottest path in the system, for every record the
// ring delivers. Indexing a fixed-size array directly by symbol id is
// allocation-free, which a map keyed by symbol id would not be, and the
// id space is small, dense, and assigned entirely by our own
// configuration, so there's no hashing to pay for. Each lookup is not
// branch-free: Apply and Get compare the id against MaxSymbols before
// indexing.
package state

import "github.com/aditya-git16/lithos/quote"

// MaxSymbols bounds the symbol-id space this table covers. Configuration
// loading is responsible for rejecting any symbol id that doesn't fit.
const MaxSymbols = 256

// PerSymbol holds the last observed record and derived stats for one
// symbol.
type PerSymbol struct {
	LastRecord   quote.QuoteRecord
	LastUpdateNs uint64

	// MidX2 is twice the mid price (bid+ask), preserving half-tick
	// precision without floating point.
	MidX2 int64

	// SpreadTicks is ask − bid. Expected to be > 0 for a well-formed
	// quote; stored regardless so callers can detect anomalies.
	SpreadTicks int64
}

// Table is the dense per-symbol state array, allocated once at consumer
// startup and mutated in place by the poll loop. Never deallocated during
// a run.
type Table struct {
	symbols [MaxSymbols]PerSymbol
}

// NewTable returns a table with every slot default-initialized.
func NewTable() *Table {
	return &Table{}
}

// Apply updates the state for rec's symbol. Reports false and leaves the
// table untouched if rec.SymbolId falls outside MaxSymbols — configured
// symbol ids are validated at load time, so this only guards against a
// stray or corrupt record reaching the table some other way.
func (t *Table) Apply(rec quote.QuoteRecord) bool {
	if int(rec.SymbolId) >= MaxSymbols {
		return false
	}
	s := &t.symbols[rec.SymbolId]
	s.LastRecord = rec
	s.LastUpdateNs = rec.TsEventNs
	s.MidX2 = rec.BidPxTicks + rec.AskPxTicks
	s.SpreadTicks = rec.AskPxTicks - rec.BidPxTicks
	return true
}

// Get returns the current state for sym, or the zero value if sym falls
// outside MaxSymbols.
func (t *Table) Get(sym quote.SymbolId) PerSymbol {
	if int(sym) >= MaxSymbols {
		return PerSymbol{}
	}
	return t.symbols[sym]
}
