// Package server exposes the decode service over HTTP.
//
// HTTP API
//
//	GET /schemes
//	    List supported schemes in registry order.
//
//	GET /convert/{scheme}/{raw}
//	    Decode raw under scheme. 400 for an unknown scheme or a malformed
//	    raw value, 422 when the value has no calendar representation (the
//	    body's kind is "overflow" or "out_of_range"). With the origin
//	    fallback configured the response is 200 with fallback set.
//
//	GET /encode/{scheme}?t=<time>
//	    Encode an RFC 3339 time as a raw value under scheme.
//
//	GET /healthz
//	    Liveness probe.
//
//	GET /metrics
//	    Prometheus metrics.
//
// Behaviour
//
//   - The server is stateless: it never records a last input.
//   - Responses are JSON. Non-2xx statuses carry an error message.
//   - An access log records method, path, status, bytes, duration and
//     request id for each request.
//   - An optional per-IP rate limit applies to everything but /healthz.
package server
