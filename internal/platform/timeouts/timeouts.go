// Package timeouts defines shared timeout constants used across the service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// BackendRequest caps one profile write against the content backend,
// including attachment uploads.
const BackendRequest = 15 * time.Second

// SessionSweep is how often idle wizard sessions are evicted.
const SessionSweep = time.Minute
