package ring

import (
	"sync/atomic"
	"unsafe"

	"github.com/aditya-git16/lithos/mmap"
	"github.com/aditya-git16/lithos/quote"
)

// Reader is a tail-follow cursor over a ring: it attaches at the
// producer's current position, ignoring history, and advances locally.
// Multiple readers are independent; none blocks the writer or each other.
type Reader struct {
	mm   *mmap.File
	base unsafe.Pointer

	readSeq  uint64
	mask     uint64
	capacity uint64
	overruns uint64
}

// OpenReader attaches a read-only Reader to an existing ring, validating
// its header and adopting the current write sequence as the starting
// cursor. A reader never sees records published before it attached.
func OpenReader(path string) (*Reader, error) {
	mm, err := mmap.OpenRO(path)
	if err != nil {
		return nil, err
	}

	base := unsafe.Pointer(&mm.Bytes()[0])
	h := headerAt(base)
	if err := validateHeader(h); err != nil {
		mm.Close()
		return nil, err
	}

	capacity := h.Capacity
	readSeq := atomic.LoadUint64(&h.WriteSeq)

	return &Reader{
		mm:       mm,
		base:     base,
		readSeq:  readSeq,
		mask:     capacity - 1,
		capacity: capacity,
	}, nil
}

// TryRead returns the next record, or ok=false if none is available yet.
// On an overrun (the writer has lapped the reader) the cursor fast-forwards
// to the oldest still-valid sequence and the skipped count is added to
// Overruns.
func (r *Reader) TryRead() (quote.QuoteRecord, bool) {
	h := headerAt(r.base)
	w := atomic.LoadUint64(&h.WriteSeq)

	if behind := w - r.readSeq; behind > r.capacity {
		r.overruns += behind - r.capacity
		r.readSeq = w - r.capacity
	}

	if r.readSeq >= w {
		return quote.QuoteRecord{}, false
	}

	idx := r.readSeq & r.mask
	rec := readSlot(slotAt(r.base, idx))
	r.readSeq++

	return rec, true
}

// PrefetchNext issues a best-effort hint that the slot the next TryRead
// will touch be warmed in cache. No semantic effect; safe to call after
// every TryRead, including ones that returned ok=false.
func (r *Reader) PrefetchNext() {
	idx := r.readSeq & r.mask
	offset := HeaderSize + int(idx)*SlotSize
	_ = r.mm.Advise(offset, SlotSize, mmap.AdviseWillNeed)
}

// Overruns returns the monotonically non-decreasing count of publications
// skipped because this reader fell too far behind.
func (r *Reader) Overruns() uint64 {
	return r.overruns
}

// Close drops the mapping.
func (r *Reader) Close() error {
	return r.mm.Close()
}
