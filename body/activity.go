package body

// Activity tracks how close a body is to being put to sleep. The storage core
// only stores and resets these fields; the sleep system owns the policy.
type Activity struct {
	// SleepThreshold is the velocity heuristic below which the body is
	// considered inactive. Negative values mean the body never sleeps.
	SleepThreshold float64
	// MinimumTimestepsBelowThreshold is how many consecutive timesteps the
	// body must stay below the threshold before it may sleep.
	MinimumTimestepsBelowThreshold uint8
	// TimestepsBelowThreshold is the running count of consecutive timesteps
	// spent below the threshold. Reset whenever the body is (re)described.
	TimestepsBelowThreshold uint32
}

// ActivityDescription is the caller-facing subset of Activity; the running
// counter is internal and starts at zero.
type ActivityDescription struct {
	SleepThreshold                 float64
	MinimumTimestepsBelowThreshold uint8
}
