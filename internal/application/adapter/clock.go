package adapter

import "time"

// Clock supplies the current time. Streak recomputation and goal scope
// filtering depend on "today", so the time source is injected to keep those
// paths deterministic in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
