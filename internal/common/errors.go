// Package common defines shared constants and user-facing fallback messages
// used across client layers of Data Guard.
package common

const (
	// MsgNetworkError is reported when a non-2xx response carries no
	// readable "message" field.
	MsgNetworkError = "Network error"

	// MsgUnexpectedError is reported when a transport failure has no
	// message of its own.
	MsgUnexpectedError = "An unexpected error occurred"
)
