// Package commands defines the epochs CLI and wires dependencies for subcommands.
//
// Commands
//
//   - schemes   List the supported epoch schemes
//   - convert   Decode a raw timestamp (re-decodes the last input when no value is given)
//   - encode    Turn a calendar time back into a raw timestamp
//   - batch     Decode one timestamp per line from a file or stdin
//   - last      Print the remembered last input
//
// # Implementation
//
// The root command loads <home>/config.yaml (or --config), applies flag
// overrides and builds the dependency graph (state store, decode service,
// logger) before any subcommand runs. Negative values must follow "--" so
// they are not read as flags, e.g. "epochs convert -s apfs -- -1".
package commands
