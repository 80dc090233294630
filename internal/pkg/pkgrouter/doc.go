// Package pkgrouter wraps HTTP routing and common middleware used by the
// read-only price API.
//
// It provides a small router abstraction over httprouter plus JSON encoding,
// error mapping, logging, recovery and correlation ID propagation.
package pkgrouter
