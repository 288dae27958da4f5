// Package common contains shared constants and messages used across
// Data Guard client components.
package common

// RequestIDHeaderName is the HTTP header carrying the per-request
// correlation id on outbound calls.
const RequestIDHeaderName = "X-Request-ID"

// DefaultAPIBaseURL is the backend address used when nothing else is
// configured (local development).
const DefaultAPIBaseURL = "http://localhost:3001/api"

// Pagination defaults applied to list endpoints when the caller passes zero.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)
