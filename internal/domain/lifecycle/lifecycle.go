// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (pings, shutdowns, publisher close).
const DefaultTimeout = 10 * time.Second
