// Package lifecycle holds shared timeouts for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks such as database pings
// and server drains.
const DefaultTimeout = 30 * time.Second
