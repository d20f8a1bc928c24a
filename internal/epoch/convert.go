package epoch

import (
	"fmt"
	"time"
)

// Bounds of the calendar range, in Unix seconds.
const (
	minUnix int64 = -62135596800 // 0001-01-01T00:00:00Z
	maxUnix int64 = 253402300799 // 9999-12-31T23:59:59Z
)

// Convert maps raw, a signed count of s.Unit() since s.Origin(), to a UTC
// calendar time.
//
// On failure the error is a *ConversionError wrapping ErrOverflow or
// ErrOutOfRange, or ErrUnknownScheme for an invalid s. No date is returned
// alongside an error.
func Convert(s Scheme, raw int64) (time.Time, error) {
	in, ok := s.info()
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %d", ErrUnknownScheme, uint8(s))
	}
	t, err := convertFrom(in.origin.Unix(), raw, in.unit)
	if err != nil {
		return time.Time{}, &ConversionError{Op: "convert", Scheme: s, Raw: raw, Err: err}
	}
	return t, nil
}

// convertFrom does the arithmetic for an origin given in whole Unix seconds.
func convertFrom(origin, raw int64, u Unit) (time.Time, error) {
	sec, nsec := split(raw, u.PerSecond())
	abs, ok := addInt64(origin, sec)
	if !ok {
		return time.Time{}, ErrOverflow
	}
	if abs < minUnix || abs > maxUnix {
		return time.Time{}, ErrOutOfRange
	}
	return time.Unix(abs, nsec).UTC(), nil
}

// split floors raw/per into whole seconds and a nanosecond remainder in
// [0, 1e9).
func split(raw, per int64) (sec, nsec int64) {
	sec, rem := raw/per, raw%per
	if rem < 0 {
		sec--
		rem += per
	}
	return sec, rem * (int64(time.Second) / per)
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}

// mulInt64 multiplies a by a positive b.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}
