// Package common defines shared sentinel errors used across the DocSync Hub
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Bootstrap errors. ErrAdapterUnavailable is the only fatal condition:
	// it is raised when an adapter cannot be set up at all.
	ErrAdapterUnavailable = errors.New("adapter unavailable")

	// Authentication errors.
	ErrAuthDenied   = errors.New("authentication denied")
	ErrProfileFetch = errors.New("profile fetch failed")

	// ErrUnauthorized marks an expired or invalid credential on a remote
	// call. The sync core recovers from it with a silent token refresh,
	// so it must stay distinguishable from ErrTransport.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTransport covers every other remote failure. Surfaced as a
	// transient message; previous data is retained.
	ErrTransport = errors.New("transport error")

	// ErrNotConfigured is returned by the suggestion adapter when no API
	// key is available. It does not affect session state.
	ErrNotConfigured = errors.New("suggestions not configured")
)
