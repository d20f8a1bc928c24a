// Package decode turns raw timestamps into display strings for the front ends.
//
// It sits between the pure converter in internal/epoch and the user: it
// renders results in a chosen layout, applies the fallback policy for values
// that do not decode, remembers the last input via a domain.StateStore, and
// decodes whole files of timestamps with a bounded worker pool.
package decode
