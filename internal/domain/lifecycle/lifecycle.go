// Package lifecycle holds shared lifecycle constants for graceful shutdown.
package lifecycle

import "time"

// DefaultTimeout is the maximum time allowed for a component to start or stop.
const DefaultTimeout = 10 * time.Second
