// Package timeouts defines shared timeout constants used across commands.
package timeouts

import "time"

// TelemetryShutdown bounds how long a command waits for the trace exporter
// to flush pending spans on exit.
const TelemetryShutdown = 5 * time.Second
