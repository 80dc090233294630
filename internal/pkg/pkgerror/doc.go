// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// Loader failures (missing directory, unusable file) are business errors
// that get logged and recovered from locally; the HTTP edge maps the same
// codes to status codes.
package pkgerror
