// Package epoch decodes integer timestamps under a fixed set of epoch schemes.
//
// A scheme pairs an origin instant with a unit of granularity. Raw values are
// signed counts of that unit elapsed since the origin, so negative values name
// instants before it.
//
// Contents
//
//   - The closed scheme registry (AllSchemes, Scheme.Label, ParseScheme)
//   - Raw to calendar conversion (Convert)
//   - Calendar to raw encoding, the inverse of Convert (Encode)
//
// # Range
//
// Results are UTC time.Time values between 0001-01-01T00:00:00Z and
// 9999-12-31T23:59:59.999999999Z inclusive. Inputs that would scale past int64
// fail with ErrOverflow; instants outside the calendar range fail with
// ErrOutOfRange. Nothing here logs, retries or substitutes a default date:
// what to show on failure is up to the caller.
//
// All functions are pure and safe for concurrent use.
package epoch
