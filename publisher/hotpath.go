// Package publisher implements the market-data hot path: a text frame in,
// a published QuoteRecord out. ProcessFrame makes no heap allocation when
// the fast extractor succeeds; the gjson fallback path does allocate.
package publisher

import (
	"log"

	"github.com/aditya-git16/lithos/bookticker"
	"github.com/aditya-git16/lithos/quote"
	"github.com/aditya-git16/lithos/ring"
)

// ProcessFrame extracts the four book-ticker fields from frame (fast
// path, falling back to the general JSON decoder), parses them into
// fixed-point ticks/lots, stamps the event with the monotonic clock,
// assembles a QuoteRecord, and publishes it.
//
// Reports false if the frame could not be parsed by either extractor —
// the caller should log and drop it; a single bad frame never takes down
// the connection.
func ProcessFrame(frame string, sym quote.SymbolId, w *ring.Writer) bool {
	fields, ok := bookticker.ExtractFast(frame)
	if !ok {
		fields, ok = bookticker.ExtractFallback(frame)
		if !ok {
			return false
		}
	}

	rec := quote.QuoteRecord{
		TsEventNs:  quote.NowNs(),
		SymbolId:   sym,
		BidPxTicks: quote.ParsePriceTicks(fields.BidPx),
		BidQtyLots: quote.ParseQtyLots(fields.BidQty),
		AskPxTicks: quote.ParsePriceTicks(fields.AskPx),
		AskQtyLots: quote.ParseQtyLots(fields.AskQty),
	}

	w.Publish(rec)
	return true
}

// HandleFrame is ProcessFrame plus the warn-and-drop logging on parse
// failure, for callers that don't want to repeat the logging boilerplate
// at every call site.
func HandleFrame(frame string, sym quote.SymbolId, w *ring.Writer) {
	if !ProcessFrame(frame, sym, w) {
		log.Printf("warn: publisher: dropped unparseable frame for symbol %d", sym)
	}
}
