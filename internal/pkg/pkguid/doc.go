// Package pkguid provides helpers for generating unique identifiers:
// UUID strings for HTTP correlation IDs and Snowflake numbers for load passes.
package pkguid
