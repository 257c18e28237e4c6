// Package lifecycle holds shared shutdown settings for servers and clients.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStop hook.
const DefaultTimeout = 10 * time.Second
