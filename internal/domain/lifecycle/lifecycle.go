// Package lifecycle holds shared bounds for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (store ping, migrations, server shutdown).
const DefaultTimeout = 10 * time.Second
