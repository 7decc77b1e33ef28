// Package ring implements the shared-memory broadcast ring: a
// single-writer-per-slot (sequence-arbitrated), many-reader, lock-free,
// tail-follow broadcast bus for QuoteRecord values.
package ring

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/aditya-git16/lithos/quote"
)

// Magic identifies the ring file format. Fixed once; readers reject
// mismatches.
const Magic uint64 = 0x4C49_5448_4F53_4255

// Version is bumped on any incompatible layout change.
const Version uint64 = 1

// HeaderSize is the size in bytes of the header region at offset 0. It is
// sized to exactly one cache line so slot 0 never shares a line with the
// header fields the writer updates on every publish.
const HeaderSize = 64

// SlotSize is the size in bytes of one ring slot: an 8-byte sequence
// counter, the QuoteRecord payload, and trailing padding to the next
// 64-byte boundary.
const SlotSize = 64

// slotPadding rounds a slot up to SlotSize once the sequence counter and
// the record payload are accounted for.
const slotPadding = SlotSize - 8 - quote.RecordSize

// rawHeader mirrors the on-disk/on-mmap layout byte-for-byte:
// bytes 0..7 magic, 8..15 version, 16..23 capacity, 24..31 elem size,
// 32..39 write sequence, 40..63 zero padding.
type rawHeader struct {
	Magic    uint64
	Version  uint64
	Capacity uint64
	ElemSize uint64
	WriteSeq uint64
	_        [HeaderSize - 5*8]byte
}

// rawSlot mirrors one on-disk/on-mmap slot: an atomic sequence counter
// followed by the record payload and trailing padding to 64 bytes.
type rawSlot struct {
	Seq     uint64
	Payload [quote.RecordSize]byte
	_       [slotPadding]byte
}

func init() {
	if unsafe.Sizeof(rawHeader{}) != HeaderSize {
		panic(fmt.Sprintf("ring: rawHeader size is %d, expected %d", unsafe.Sizeof(rawHeader{}), HeaderSize))
	}
	if unsafe.Sizeof(rawSlot{}) != SlotSize {
		panic(fmt.Sprintf("ring: rawSlot size is %d, expected %d", unsafe.Sizeof(rawSlot{}), SlotSize))
	}
}

// ErrInvalidHeader is the sentinel wrapped by every header-validation
// failure, so callers can test with errors.Is regardless of which specific
// check failed. Attaching to a ring with an invalid header is always
// fatal.
var ErrInvalidHeader = errors.New("ring: invalid header")

func validateHeader(h *rawHeader) error {
	if h.Magic != Magic {
		return fmt.Errorf("%w: bad magic %x", ErrInvalidHeader, h.Magic)
	}
	if h.Version != Version {
		return fmt.Errorf("%w: version %d, want %d", ErrInvalidHeader, h.Version, Version)
	}
	if h.Capacity == 0 || h.Capacity&(h.Capacity-1) != 0 {
		return fmt.Errorf("%w: capacity %d is not a power of two", ErrInvalidHeader, h.Capacity)
	}
	if h.ElemSize != quote.RecordSize {
		return fmt.Errorf("%w: element size %d, want %d", ErrInvalidHeader, h.ElemSize, quote.RecordSize)
	}
	return nil
}

// BytesForRing returns the total file size required to hold a ring of the
// given capacity: sizeof(header) + capacity * sizeof(slot).
func BytesForRing(capacity uint64) uint64 {
	return HeaderSize + capacity*SlotSize
}
