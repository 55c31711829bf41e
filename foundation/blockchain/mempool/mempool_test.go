package mempool_test

import (
	"testing"

	"github.com/educhain/educhain/foundation/blockchain/database"
	"github.com/educhain/educhain/foundation/blockchain/mempool"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestCRUD(t *testing.T) {
	txs := []database.Tx{
		database.NewTx("Alice", "Bob", 10),
		database.NewTx("Bob", "Alice", 5),
		database.NewTx("Alice", "Bob", 25),
	}

	t.Log("Given the need to manage the pool of pending transactions.")
	{
		mp := mempool.New()

		for i, tx := range txs {
			if count := mp.Add(tx); count != i+1 {
				t.Fatalf("\t%s\tShould get pool size %d after add: got %d", failed, i+1, count)
			}
			t.Logf("\t%s\tShould get pool size %d after add.", success, i+1)
		}

		for i, tx := range mp.Copy() {
			if tx.ID != txs[i].ID {
				t.Logf("\t%s\tgot: %s", failed, tx.ID)
				t.Logf("\t%s\texp: %s", failed, txs[i].ID)
				t.Fatalf("\t%s\tShould preserve submission order.", failed)
			}
		}
		t.Logf("\t%s\tShould preserve submission order.", success)

		if !mp.Contains(txs[1].ID) {
			t.Fatalf("\t%s\tShould find a pending transaction by id.", failed)
		}
		t.Logf("\t%s\tShould find a pending transaction by id.", success)

		mp.Drop(2)
		if mp.Count() != 1 {
			t.Fatalf("\t%s\tShould have 1 transaction after dropping 2: got %d", failed, mp.Count())
		}
		t.Logf("\t%s\tShould have 1 transaction after dropping 2.", success)

		if got := mp.Copy()[0]; got.ID != txs[2].ID {
			t.Fatalf("\t%s\tShould keep the newest transaction after drop.", failed)
		}
		t.Logf("\t%s\tShould keep the newest transaction after drop.", success)

		mp.Truncate()
		if mp.Count() != 0 {
			t.Fatalf("\t%s\tShould be able to truncate the pool.", failed)
		}
		t.Logf("\t%s\tShould be able to truncate the pool.", success)
	}
}

func TestDuplicates(t *testing.T) {
	t.Log("Given the need to allow duplicate ids in the pool when replay protection is off.")
	{
		mp := mempool.New()

		tx := database.NewTx("Alice", "Bob", 10)
		mp.Add(tx)
		mp.Add(tx)

		if mp.Count() != 2 {
			t.Fatalf("\t%s\tShould hold both copies of the transaction: got %d", failed, mp.Count())
		}
		t.Logf("\t%s\tShould hold both copies of the transaction.", success)
	}
}
