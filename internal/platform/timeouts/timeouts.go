// Package timeouts defines shared timeout constants used across the website
// binaries. Centralizing these values prevents drift between entry points and
// makes the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SubscribeWrite caps a single newsletter subscription write, keeping a slow
// disk from pinning request handlers.
const SubscribeWrite = 2 * time.Second
