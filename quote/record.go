// Package quote defines the fixed-layout market event published through
// the broadcast ring, along with the fixed-point decimal parser and the
// monotonic clock used to build one.
package quote

import "encoding/binary"

// SymbolId is a 16-bit identifier assigned by configuration and stable
// across processes. Its raw value is directly usable as an array index
// into a per-symbol state table.
type SymbolId uint16

// RecordSize is the exact wire size of QuoteRecord: 42 bytes, no padding.
const RecordSize = 42

// QuoteRecord (aka top-of-book) is the fixed-layout market event published
// into the ring. It has no natural in-memory analogue with guaranteed
// packing in Go, so the ring never stores a QuoteRecord's Go memory
// layout directly — it always goes through Encode/Decode against a
// 42-byte buffer with this wire layout:
//
//	u64 ts_ns | u16 symbol_id | i64 bid_px_ticks | i64 bid_qty_lots | i64 ask_px_ticks | i64 ask_qty_lots
//
// little-endian, byte-packed, alignment 1.
type QuoteRecord struct {
	TsEventNs  uint64
	SymbolId   SymbolId
	BidPxTicks int64
	BidQtyLots int64
	AskPxTicks int64
	AskQtyLots int64
}

// MidTicks returns the truncated mid price in ticks. Prefer MidX2 (see
// state package) when half-tick precision matters.
func (r QuoteRecord) MidTicks() int64 {
	return (r.BidPxTicks + r.AskPxTicks) / 2
}

// Encode writes the wire representation of r into dst, which must be at
// least RecordSize bytes.
func (r QuoteRecord) Encode(dst []byte) {
	_ = dst[:RecordSize] // bounds check hint
	binary.LittleEndian.PutUint64(dst[0:8], r.TsEventNs)
	binary.LittleEndian.PutUint16(dst[8:10], uint16(r.SymbolId))
	binary.LittleEndian.PutUint64(dst[10:18], uint64(r.BidPxTicks))
	binary.LittleEndian.PutUint64(dst[18:26], uint64(r.BidQtyLots))
	binary.LittleEndian.PutUint64(dst[26:34], uint64(r.AskPxTicks))
	binary.LittleEndian.PutUint64(dst[34:42], uint64(r.AskQtyLots))
}

// Decode reads a wire representation from src (at least RecordSize bytes)
// into r.
func (r *QuoteRecord) Decode(src []byte) {
	_ = src[:RecordSize]
	r.TsEventNs = binary.LittleEndian.Uint64(src[0:8])
	r.SymbolId = SymbolId(binary.LittleEndian.Uint16(src[8:10]))
	r.BidPxTicks = int64(binary.LittleEndian.Uint64(src[10:18]))
	r.BidQtyLots = int64(binary.LittleEndian.Uint64(src[18:26]))
	r.AskPxTicks = int64(binary.LittleEndian.Uint64(src[26:34]))
	r.AskQtyLots = int64(binary.LittleEndian.Uint64(src[34:42]))
}
