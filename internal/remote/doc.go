// Package remote is an HTTP client for the epochsd decode server.
//
// It lets the CLI decode against a shared server instead of the local
// converter. Requests are JSON over HTTP and accept a context for
// cancellation and deadlines. Non-2xx statuses come back as *APIError, which
// unwraps to epoch.ErrOverflow or epoch.ErrOutOfRange when the server
// reported one of those kinds.
package remote
