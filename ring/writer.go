package ring

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/aditya-git16/lithos/mmap"
	"github.com/aditya-git16/lithos/quote"
)

// Writer publishes QuoteRecord values into a ring. Publishing mutates a
// slot in place; a Writer owns no records exclusively and is destroyed by
// Close, which drops the mapping.
//
// Multiple independent Writer handles may target the same ring file. The
// atomic fetch-add on the header's write sequence is what makes that
// safe: distinct writers receive distinct sequence numbers, so at most
// one writer's seqlock protocol runs against a given slot for a given
// sequence.
type Writer struct {
	mm   *mmap.File
	base unsafe.Pointer
	mask uint64
}

// CreateWriter creates a new ring file at path sized for capacity slots
// (which must be a power of two) and returns a Writer attached to it.
func CreateWriter(path string, capacity uint64) (*Writer, error) {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("ring: capacity %d is not a power of two", capacity)
	}

	size := BytesForRing(capacity)
	mm, err := mmap.CreateRW(path, int(size))
	if err != nil {
		return nil, err
	}

	base := unsafe.Pointer(&mm.Bytes()[0])
	h := headerAt(base)
	h.Magic = Magic
	h.Version = Version
	h.Capacity = capacity
	h.ElemSize = quote.RecordSize
	atomic.StoreUint64(&h.WriteSeq, 0)
	for i := uint64(0); i < capacity; i++ {
		atomic.StoreUint64(&slotAt(base, i).Seq, 0)
	}

	return &Writer{mm: mm, base: base, mask: capacity - 1}, nil
}

// OpenWriter attaches an additional writer handle to an existing ring
// file, validating its header first. Used when several producer threads
// or processes publish into the same ring.
func OpenWriter(path string) (*Writer, error) {
	mm, err := mmap.OpenRW(path)
	if err != nil {
		return nil, err
	}

	base := unsafe.Pointer(&mm.Bytes()[0])
	if err := validateHeader(headerAt(base)); err != nil {
		mm.Close()
		return nil, err
	}

	capacity := headerAt(base).Capacity
	return &Writer{mm: mm, base: base, mask: capacity - 1}, nil
}

// Publish claims the next sequence number and writes rec into the slot it
// maps to. Always succeeds; the ring protocol never fails after attach.
func (w *Writer) Publish(rec quote.QuoteRecord) {
	h := headerAt(w.base)
	seq := atomic.AddUint64(&h.WriteSeq, 1) - 1
	idx := seq & w.mask
	writeSlot(slotAt(w.base, idx), rec)
}

// Close drops the mapping.
func (w *Writer) Close() error {
	return w.mm.Close()
}
