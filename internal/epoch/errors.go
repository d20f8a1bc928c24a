package epoch

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrOverflow is returned when scaling by the scheme's unit cannot be
	// represented without wrapping.
	ErrOverflow = errors.New("offset overflows int64")

	// ErrOutOfRange is returned when the instant falls outside
	// 0001-01-01T00:00:00Z..9999-12-31T23:59:59.999999999Z.
	ErrOutOfRange = errors.New("instant outside calendar range")

	// ErrUnknownScheme is returned for a Scheme value or name that is not
	// built in.
	ErrUnknownScheme = errors.New("unknown epoch scheme")
)

// ConversionError describes a (scheme, value) pair with no calendar
// representation. Err is ErrOverflow or ErrOutOfRange.
type ConversionError struct {
	Op     string // "convert" or "encode"
	Scheme Scheme
	Raw    int64     // set by Convert
	Time   time.Time // set by Encode
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Op == "encode" {
		return fmt.Sprintf("epoch: encode %s %s: %v", e.Scheme.Name(), e.Time.Format(time.RFC3339Nano), e.Err)
	}
	return fmt.Sprintf("epoch: %s %s %d: %v", e.Op, e.Scheme.Name(), e.Raw, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
