// Package lifecycle holds shared timing constants for startup and shutdown
// hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations.
const DefaultTimeout = 10 * time.Second
