package quote

import "golang.org/x/sys/unix"

// NowNs returns a strictly non-decreasing nanosecond counter read from the
// host's CLOCK_MONOTONIC. Unlike Go's time.Since(anchor) pattern — whose
// monotonic reading is only meaningful within a single process — the raw
// CLOCK_MONOTONIC value is directly comparable across the publisher and
// consumer processes on the same host, which cross-process latency math
// needs. Never tied to wall-clock, so NTP adjustments and leap seconds
// never move it backwards.
func NowNs() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}
	return uint64(ts.Sec)*1_000_000_000 + uint64(ts.Nsec)
}
