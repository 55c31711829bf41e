// Package difficulty recomputes the mining difficulty from the duration of
// the most recent mining run. The retarget window is the last block only,
// with a fixed tolerance band around the target block time.
package difficulty

import "time"

// MinDifficulty is the floor for the difficulty level. At zero every hash
// would satisfy the work predicate and the proof of work would be gone.
const MinDifficulty = 1

// adjustStep is how many levels a single retarget moves the difficulty.
// One hex digit per step already changes the expected search cost 16x.
const adjustStep = 1

// Controller holds the fixed retarget policy. Adjust is a pure function of
// the previous difficulty and the observed mining duration.
type Controller struct {
	target    time.Duration
	tolerance time.Duration
}

// New constructs a controller for the specified target block time and
// tolerance band.
func New(target time.Duration, tolerance time.Duration) Controller {
	return Controller{
		target:    target,
		tolerance: tolerance,
	}
}

// Adjust returns the difficulty for the next block. Mining materially
// faster than the target raises the difficulty, materially slower lowers
// it but never below MinDifficulty, anything inside the tolerance band
// leaves it unchanged.
func (c Controller) Adjust(prev uint, elapsed time.Duration) uint {
	switch {
	case elapsed < c.target-c.tolerance:
		return prev + adjustStep

	case elapsed > c.target+c.tolerance:
		if prev <= MinDifficulty+adjustStep-1 {
			return MinDifficulty
		}
		return prev - adjustStep

	default:
		return prev
	}
}
