// Package lifecycle holds shared limits for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook such as a database ping or server shutdown.
const DefaultTimeout = 10 * time.Second
