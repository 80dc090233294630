// Package pkgroutine runs background tasks, such as the optional HTTP
// listener, with a concurrency limit, error collection and panic recovery.
package pkgroutine
