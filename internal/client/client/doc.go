// Package client is the single choke point for every call the Data Guard
// client makes to its REST backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) with one
//     method per backend endpoint: auth, scan, alerts, dashboard and
//     analytics.
//  2. A concrete HTTP implementation (see HTTPClient) that applies JSON
//     headers, request ids and cookie credentials uniformly, and normalizes
//     failures into two error kinds.
//
// # Error Handling
//
// A non-2xx response becomes *APIError whose message is the backend's
// "message" field or "Network error". A request that never completed becomes
// *TransportError. Callers can match with errors.Is: ErrUnauthorized (401
// and 403 responses) and ErrUnavailable (every transport failure).
//
// There are no retries and no caching. A client built without WithTimeout
// never times out on its own; the caller bounds a call through its context.
// WithTimeout adds a per-round-trip limit (the CLI passes its configured
// request timeout, 30s by default).
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Requests issued together complete
// in no particular order.
package client
