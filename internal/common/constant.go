// Package common contains constants shared by the client packages.
package common

// Header names used on outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// DefaultKeyPrefix namespaces every entry the client writes to the local
// key/value store.
const DefaultKeyPrefix = "@carework:"
