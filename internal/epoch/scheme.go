package epoch

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the granularity of a raw timestamp.
type Unit uint8

const (
	Second Unit = iota + 1
	Millisecond
	Microsecond
	Nanosecond
)

// PerSecond returns how many units make up one second.
func (u Unit) PerSecond() int64 {
	switch u {
	case Second:
		return 1
	case Millisecond:
		return 1_000
	case Microsecond:
		return 1_000_000
	case Nanosecond:
		return 1_000_000_000
	}
	return 0
}

// Duration returns the length of one unit.
func (u Unit) Duration() time.Duration {
	if ps := u.PerSecond(); ps != 0 {
		return time.Second / time.Duration(ps)
	}
	return 0
}

func (u Unit) String() string {
	switch u {
	case Second:
		return "seconds"
	case Millisecond:
		return "milliseconds"
	case Microsecond:
		return "microseconds"
	case Nanosecond:
		return "nanoseconds"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// Scheme identifies one of the built-in epoch conventions.
// The zero value is not a valid scheme.
type Scheme uint8

const (
	Apfs Scheme = iota + 1
	Java
	Mozilla
	Unix
)

type schemeInfo struct {
	name   string
	label  string
	origin time.Time // whole seconds, UTC
	unit   Unit
}

var unixEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// schemes is indexed by Scheme and never modified.
var schemes = [...]schemeInfo{
	Apfs:    {name: "apfs", label: "APFS (nanoseconds)", origin: unixEpoch, unit: Nanosecond},
	Java:    {name: "java", label: "Java (milliseconds)", origin: unixEpoch, unit: Millisecond},
	Mozilla: {name: "mozilla", label: "Mozilla (microseconds)", origin: unixEpoch, unit: Microsecond},
	Unix:    {name: "unix", label: "Unix (seconds)", origin: unixEpoch, unit: Second},
}

// AllSchemes returns every supported scheme in a stable order.
// The returned slice belongs to the caller.
func AllSchemes() []Scheme {
	return []Scheme{Apfs, Java, Mozilla, Unix}
}

func (s Scheme) info() (schemeInfo, bool) {
	if s == 0 || int(s) >= len(schemes) {
		return schemeInfo{}, false
	}
	return schemes[s], true
}

// Valid reports whether s is one of the built-in schemes.
func (s Scheme) Valid() bool {
	_, ok := s.info()
	return ok
}

// Label returns the human-readable name, e.g. "Unix (seconds)".
func (s Scheme) Label() string {
	if in, ok := s.info(); ok {
		return in.label
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

// Name returns the short lowercase identifier used on command lines and in
// stored state, e.g. "unix".
func (s Scheme) Name() string {
	if in, ok := s.info(); ok {
		return in.name
	}
	return ""
}

// Origin returns the instant that raw value 0 maps to.
func (s Scheme) Origin() time.Time {
	in, _ := s.info()
	return in.origin
}

// Unit returns the granularity of raw values under s.
func (s Scheme) Unit() Unit {
	in, _ := s.info()
	return in.unit
}

func (s Scheme) String() string { return s.Label() }

// ParseScheme resolves a scheme by short name or label, ignoring case and
// surrounding space.
func ParseScheme(v string) (Scheme, error) {
	v = strings.TrimSpace(v)
	for _, s := range AllSchemes() {
		if strings.EqualFold(v, s.Name()) || strings.EqualFold(v, s.Label()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, v)
}

// MarshalText encodes s as its short name.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, uint8(s))
	}
	return []byte(s.Name()), nil
}

// UnmarshalText accepts anything ParseScheme does.
func (s *Scheme) UnmarshalText(b []byte) error {
	v, err := ParseScheme(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
