// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single lifecycle hook such as a ping or graceful shutdown.
const DefaultTimeout = 10 * time.Second
