// Package pkglog contains logging helpers used across the application.
//
// It is built around slog: a JSON handler with stable keys, plus request
// correlation IDs attached to each record when the HTTP API is enabled.
package pkglog
