package ring

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/aditya-git16/lithos/quote"
)

// headerAt overlays a rawHeader onto the start of an mmap'd region. Safe
// because the region is page-aligned (far stricter than rawHeader's 8-byte
// alignment requirement) and is never touched by the Go garbage collector
// (it is OS-backed memory, not heap memory).
func headerAt(base unsafe.Pointer) *rawHeader {
	return (*rawHeader)(base)
}

// slotAt overlays a rawSlot onto ring slot idx.
func slotAt(base unsafe.Pointer, idx uint64) *rawSlot {
	return (*rawSlot)(unsafe.Add(base, HeaderSize+int(idx)*SlotSize))
}

// writeSlot executes the seqlock write protocol on s: bump the sequence
// to odd before touching the payload, write the payload, then bump it to
// even. A reader that observes an odd sequence knows a write is in
// flight and retries instead of reading a torn payload.
//
// Go's sync/atomic does not expose separate acquire/release orderings —
// every Load/Store/Add below runs at the stronger sequentially consistent
// level the runtime provides, which still satisfies the happens-before
// relation this protocol depends on between the writer's stores and a
// reader's loads; it just synchronizes a little harder than the bare
// minimum would require.
func writeSlot(s *rawSlot, rec quote.QuoteRecord) {
	s0 := atomic.LoadUint64(&s.Seq)
	atomic.StoreUint64(&s.Seq, s0+1) // odd: write in progress
	rec.Encode(s.Payload[:])
	atomic.StoreUint64(&s.Seq, s0+2) // even: stable
}

// readSlot executes the seqlock read protocol, spinning while a write is
// in progress or lands mid-read.
func readSlot(s *rawSlot) quote.QuoteRecord {
	for {
		s1 := atomic.LoadUint64(&s.Seq)
		if s1&1 == 1 {
			runtime.Gosched()
			continue
		}

		var rec quote.QuoteRecord
		rec.Decode(s.Payload[:])

		s2 := atomic.LoadUint64(&s.Seq)
		if s1 != s2 {
			runtime.Gosched()
			continue
		}

		return rec
	}
}
