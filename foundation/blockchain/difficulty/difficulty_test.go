package difficulty_test

import (
	"testing"
	"time"

	"github.com/educhain/educhain/foundation/blockchain/difficulty"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestAdjust(t *testing.T) {
	type table struct {
		name    string
		prev    uint
		elapsed time.Duration
		exp     uint
	}

	tt := []table{
		{name: "fast-raises", prev: 2, elapsed: 500 * time.Millisecond, exp: 3},
		{name: "slow-lowers", prev: 3, elapsed: 4 * time.Second, exp: 2},
		{name: "on-target-holds", prev: 2, elapsed: 2 * time.Second, exp: 2},
		{name: "inside-band-low-holds", prev: 2, elapsed: 1600 * time.Millisecond, exp: 2},
		{name: "inside-band-high-holds", prev: 2, elapsed: 2400 * time.Millisecond, exp: 2},
		{name: "floor-holds", prev: 1, elapsed: time.Minute, exp: 1},
	}

	c := difficulty.New(2*time.Second, 500*time.Millisecond)

	t.Log("Given the need to retarget difficulty from the last mining run.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				got := c.Adjust(tst.prev, tst.elapsed)
				if got != tst.exp {
					t.Logf("\t%s\tTest %d:\tgot: %d", failed, testID, got)
					t.Logf("\t%s\tTest %d:\texp: %d", failed, testID, tst.exp)
					t.Fatalf("\t%s\tTest %d:\tShould get the right difficulty for %s.", failed, testID, tst.name)
				}
				t.Logf("\t%s\tTest %d:\tShould get the right difficulty for %s.", success, testID, tst.name)
			}

			t.Run(tst.name, f)
		}
	}
}

func TestNeverBelowFloor(t *testing.T) {
	t.Log("Given the need to keep the difficulty at or above the floor.")
	{
		c := difficulty.New(time.Second, 100*time.Millisecond)

		d := uint(3)
		for i := 0; i < 10; i++ {
			d = c.Adjust(d, time.Hour)
		}

		if d != difficulty.MinDifficulty {
			t.Fatalf("\t%s\tShould settle at the floor: got %d", failed, d)
		}
		t.Logf("\t%s\tShould settle at the floor.", success)
	}
}
