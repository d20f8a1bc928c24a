package epoch

import (
	"fmt"
	"time"
)

// Encode is the inverse of Convert: it returns the raw value that names t
// under s, truncating toward the past to the scheme's unit.
//
// Instants outside the calendar range fail with ErrOutOfRange. Instants whose
// unit count does not fit in int64 (e.g. APFS beyond year 2262) fail with
// ErrOverflow.
func Encode(s Scheme, t time.Time) (int64, error) {
	in, ok := s.info()
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownScheme, uint8(s))
	}
	raw, err := encodeFrom(in.origin.Unix(), t, in.unit)
	if err != nil {
		return 0, &ConversionError{Op: "encode", Scheme: s, Time: t, Err: err}
	}
	return raw, nil
}

func encodeFrom(origin int64, t time.Time, u Unit) (int64, error) {
	abs := t.Unix()
	if abs < minUnix || abs > maxUnix {
		return 0, ErrOutOfRange
	}
	sec, ok := subInt64(abs, origin)
	if !ok {
		return 0, ErrOverflow
	}
	per := u.PerSecond()
	frac := int64(t.Nanosecond()) / (int64(time.Second) / per)
	// Borrow a second before the origin so the product can reach MinInt64.
	if sec < 0 && frac > 0 {
		sec++
		frac -= per
	}
	whole, ok := mulInt64(sec, per)
	if !ok {
		return 0, ErrOverflow
	}
	raw, ok := addInt64(whole, frac)
	if !ok {
		return 0, ErrOverflow
	}
	return raw, nil
}
