// Package lifecycle holds timing constants shared by start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart pings and OnStop shutdowns.
const DefaultTimeout = 10 * time.Second
