package replay_test

import (
	"errors"
	"testing"

	"github.com/educhain/educhain/foundation/blockchain/replay"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestSecureMode(t *testing.T) {
	t.Log("Given the need to block a replayed transaction id in secure mode.")
	{
		g := replay.New()

		if err := g.Admit("tx-1", true); err != nil {
			t.Fatalf("\t%s\tShould admit a fresh id: %s", failed, err)
		}
		t.Logf("\t%s\tShould admit a fresh id.", success)

		err := g.Admit("tx-1", true)
		if err == nil {
			t.Fatalf("\t%s\tShould reject the replayed id.", failed)
		}
		if !errors.Is(err, replay.ErrDuplicateID) {
			t.Fatalf("\t%s\tShould reject with ErrDuplicateID: got %v", failed, err)
		}
		t.Logf("\t%s\tShould reject the replayed id with ErrDuplicateID.", success)
	}
}

func TestInsecureMode(t *testing.T) {
	t.Log("Given the need to reproduce the replay attack with protection off.")
	{
		g := replay.New()

		if err := g.Admit("tx-1", false); err != nil {
			t.Fatalf("\t%s\tShould admit a fresh id: %s", failed, err)
		}
		if err := g.Admit("tx-1", false); err != nil {
			t.Fatalf("\t%s\tShould admit the replayed id when protection is off: %s", failed, err)
		}
		t.Logf("\t%s\tShould admit the replayed id when protection is off.", success)

		if !g.Known("tx-1") {
			t.Fatalf("\t%s\tShould still record the id for bookkeeping.", failed)
		}
		t.Logf("\t%s\tShould still record the id for bookkeeping.", success)

		// The id was recorded, so flipping secure mode back on blocks it.
		if err := g.Admit("tx-1", true); !errors.Is(err, replay.ErrDuplicateID) {
			t.Fatalf("\t%s\tShould reject the id once secure mode is back on: got %v", failed, err)
		}
		t.Logf("\t%s\tShould reject the id once secure mode is back on.", success)
	}
}

func TestReset(t *testing.T) {
	t.Log("Given the need to clear the guard only on explicit request.")
	{
		g := replay.New()
		g.Record("tx-1")
		g.Record("tx-2")

		if g.Count() != 2 {
			t.Fatalf("\t%s\tShould have 2 recorded ids: got %d", failed, g.Count())
		}
		t.Logf("\t%s\tShould have 2 recorded ids.", success)

		g.Reset()
		if g.Count() != 0 || g.Known("tx-1") {
			t.Fatalf("\t%s\tShould be empty after reset.", failed)
		}
		t.Logf("\t%s\tShould be empty after reset.", success)
	}
}
