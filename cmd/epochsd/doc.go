// Command epochsd serves the epoch decoder over HTTP.
//
// HTTP API
//
//	GET /schemes
//	    List the supported schemes in registry order.
//
//	GET /convert/{scheme}/{raw}
//	    Decode {raw} under {scheme} (name or label, case-insensitive).
//	    Unparsable input is 400; a value outside the calendar range or
//	    overflowing int64 is 422 with {"error", "kind"}.
//
//	GET /encode/{scheme}?t=<time>
//	    Return the raw value naming t under {scheme}.
//
//	GET /healthz, GET /metrics
//	    Liveness and Prometheus metrics.
//
// Behaviour
//
//   - The daemon is stateless; it never writes the CLI's last-input file.
//   - Logs are JSON on stderr, one access log line per request.
//   - The default listen address is :8080. SIGINT or SIGTERM shuts it down
//     gracefully.
package main
