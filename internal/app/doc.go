// Package app wires application dependencies for the epochs binaries.
//
// It loads Config from YAML, then builds the logger, state store, metrics
// and decode service from it, exposing them via the Wire struct for commands
// and the HTTP server to use.
package app
