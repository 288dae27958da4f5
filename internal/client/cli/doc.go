// Package cli provides the interactive Data Guard command-line client.
//
// It wires configuration, the HTTP API client and the application services
// into a REPL. On start the saved session cookie (if any) is checked against
// the profile endpoint; afterwards the prompt follows the session store.
//
// Key features:
//   - Register / Login / Logout, profile editing and password change
//   - Text and file scans, scan history and statistics
//   - Alert listing, acknowledge, resolve and snooze
//   - Dashboard summary and analytics, including a multi-period overview
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
