package lesson

import "time"

// simTickMsg drives the simulation kernel while a play phase is active.
type simTickMsg time.Time
