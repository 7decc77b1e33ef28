// Package mmap exposes a file as a raw, shared byte region. It is the
// only place in this module that talks to the OS's memory-mapping
// syscalls — the ring package builds the seqlock protocol entirely on
// top of the []byte this package hands back.
package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a memory-mapped region backed by an open file descriptor. The
// file stays open for as long as the mapping is alive.
type File struct {
	file *os.File
	data []byte
}

// CreateRW creates (or truncates) a file at path to exactly size bytes
// and maps it read-write.
func CreateRW(path string, size int) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("mmap: open %s: %w", path, err)
	}
	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: truncate %s: %w", path, err)
	}
	return mapFile(f, size, unix.PROT_READ|unix.PROT_WRITE)
}

// OpenRW opens an existing file read-write and maps it over its full
// current length.
func OpenRW(path string) (*File, error) {
	return openExisting(path, os.O_RDWR, unix.PROT_READ|unix.PROT_WRITE)
}

// OpenRO opens an existing file read-only and maps it over its full
// current length.
func OpenRO(path string) (*File, error) {
	return openExisting(path, os.O_RDONLY, unix.PROT_READ)
}

func openExisting(path string, flag int, prot int) (*File, error) {
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap: open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: stat %s: %w", path, err)
	}
	return mapFile(f, int(info.Size()), prot)
}

func mapFile(f *os.File, size int, prot int) (*File, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, prot, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: mmap %s: %w", f.Name(), err)
	}
	return &File{file: f, data: data}, nil
}

// Bytes returns the raw mapped region. The slice is valid until Close.
func (m *File) Bytes() []byte { return m.data }

// Len returns the size of the mapped region in bytes.
func (m *File) Len() int { return len(m.data) }

// AdviseWillNeed is the madvise hint used to prefetch an upcoming slot.
// Re-exported so callers don't need their own import of
// golang.org/x/sys/unix just to name the advice constant.
const AdviseWillNeed = unix.MADV_WILLNEED

// Advise applies a madvise hint over [offset, offset+length) of the
// mapping, widened down to the start of the page containing offset.
// Best-effort and safe to treat as a no-op on failure: callers use this
// purely for prefetching, never for correctness.
func (m *File) Advise(offset, length, advice int) error {
	if offset < 0 || length <= 0 || offset+length > len(m.data) {
		return nil
	}
	// madvise rejects an address that is not page-aligned; the mapping
	// itself starts on a page boundary, so rounding offset down suffices.
	start := offset &^ (os.Getpagesize() - 1)
	return unix.Madvise(m.data[start:offset+length], advice)
}

// Close unmaps the region and closes the underlying file descriptor.
func (m *File) Close() error {
	err := unix.Munmap(m.data)
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	return err
}
