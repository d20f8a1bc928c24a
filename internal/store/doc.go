// Package store provides file-based persistence for epochs.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Files live under the user's configured home directory
// and are replaced atomically, so a crash mid-write leaves the previous
// contents intact.
//
// The package includes:
//   - The last decoded input (StateFileStore)
package store
