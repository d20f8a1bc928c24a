package decode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownLayout is returned by ParseLayout for names it does not know.
var ErrUnknownLayout = errors.New("unknown layout")

// Layout selects how decoded times are rendered.
type Layout uint8

const (
	// LayoutDefault renders "2006-01-02 15:04:05" with an optional fraction.
	LayoutDefault Layout = iota
	// LayoutISO renders "2006-01-02T15:04:05" with an optional fraction.
	LayoutISO
	// LayoutRFC3339 renders time.RFC3339Nano.
	LayoutRFC3339
)

var layoutNames = [...]string{
	LayoutDefault: "default",
	LayoutISO:     "iso",
	LayoutRFC3339: "rfc3339",
}

func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// ParseLayout resolves a layout name; the empty string means LayoutDefault.
func ParseLayout(s string) (Layout, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LayoutDefault, nil
	}
	for i, n := range layoutNames {
		if s == n {
			return Layout(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// Format renders t in UTC using l.
//
// The default and ISO layouts print a fraction only when t has one, using
// 3, 6 or 9 digits, whichever is the shortest exact form.
func Format(t time.Time, l Layout) string {
	t = t.UTC()
	switch l {
	case LayoutRFC3339:
		return t.Format(time.RFC3339Nano)
	case LayoutISO:
		return t.Format("2006-01-02T15:04:05") + fraction(t.Nanosecond())
	default:
		return t.Format("2006-01-02 15:04:05") + fraction(t.Nanosecond())
	}
}

func fraction(nsec int) string {
	switch {
	case nsec == 0:
		return ""
	case nsec%1_000_000 == 0:
		return fmt.Sprintf(".%03d", nsec/1_000_000)
	case nsec%1_000 == 0:
		return fmt.Sprintf(".%06d", nsec/1_000)
	default:
		return fmt.Sprintf(".%09d", nsec)
	}
}

// ParseTime accepts RFC 3339 or either of the fixed layouts, always in UTC
// when no offset is given.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse time %q: want RFC 3339 or YYYY-MM-DD[ HH:MM:SS[.fff]]", s)
}

// Fallback decides what Decode returns for values that do not convert.
type Fallback uint8

const (
	// FallbackNone surfaces the conversion error.
	FallbackNone Fallback = iota
	// FallbackOrigin shows the scheme origin instead and flags the result.
	FallbackOrigin
)

func (f Fallback) String() string {
	if f == FallbackOrigin {
		return "origin"
	}
	return "none"
}

// ParseFallback resolves "none" (or "error", or empty) and "origin".
func ParseFallback(s string) (Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "error":
		return FallbackNone, nil
	case "origin":
		return FallbackOrigin, nil
	}
	return 0, fmt.Errorf("unknown fallback %q (want none or origin)", s)
}

// ParseRaw parses a raw timestamp in decimal, or hex with a 0x prefix.
// Underscores between digits are ignored and a leading sign is allowed.
func ParseRaw(s string) (int64, error) {
	v := strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	neg := false
	switch {
	case strings.HasPrefix(v, "-"):
		neg, v = true, v[1:]
	case strings.HasPrefix(v, "+"):
		v = v[1:]
	}
	base := 10
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		base, v = 16, v[2:]
	}
	if v == "" || strings.HasPrefix(v, "-") || strings.HasPrefix(v, "+") {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}
	u, err := strconv.ParseUint(v, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}
	switch {
	case !neg && u <= math.MaxInt64:
		return int64(u), nil
	case neg && u <= 1<<63:
		return int64(-u), nil
	}
	return 0, fmt.Errorf("timestamp %q does not fit in 64 bits", s)
}
