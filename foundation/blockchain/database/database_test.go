package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/educhain/educhain/foundation/blockchain/database"
	"github.com/educhain/educhain/foundation/blockchain/storage/memory"
)

func newDatabase(t *testing.T) *database.Database {
	strg, err := memory.New()
	if err != nil {
		t.Fatalf("\t%s\tShould be able to create storage: %s", failed, err)
	}

	db, err := database.New(testGenesis(), strg)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to create the database: %s", failed, err)
	}

	return db
}

func mineNext(t *testing.T, db *database.Database, trans []database.Tx) database.Block {
	block, _, err := database.POW(context.Background(), 1, db.LatestBlock(), trans, noopEv)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to mine a block: %s", failed, err)
	}

	if err := db.Write(block); err != nil {
		t.Fatalf("\t%s\tShould be able to write the block: %s", failed, err)
	}

	return block
}

func TestWriteContiguous(t *testing.T) {
	t.Log("Given the need to keep block numbers contiguous.")
	{
		db := newDatabase(t)

		block := mineNext(t, db, []database.Tx{database.NewTx("Alice", "Bob", 10)})
		t.Logf("\t%s\tShould be able to write block %d.", success, block.Header.Number)

		// Writing the same block again skips a number.
		err := db.Write(block)
		if !errors.Is(err, database.ErrNotNextBlock) {
			t.Fatalf("\t%s\tShould reject a block that is not the next number: got %v", failed, err)
		}
		t.Logf("\t%s\tShould reject a block that is not the next number.", success)
	}
}

func TestValidateChain(t *testing.T) {
	t.Log("Given the need to detect a tampered block and everything after it.")
	{
		db := newDatabase(t)

		mineNext(t, db, []database.Tx{database.NewTx("Alice", "Bob", 10)})
		mineNext(t, db, []database.Tx{database.NewTx("Alice", "Bob", 5)})
		mineNext(t, db, []database.Tx{database.NewTx("Bob", "Alice", 1)})

		status := db.Validate()
		if !status.Valid {
			t.Fatalf("\t%s\tShould report a healthy chain as valid: failing %v", failed, status.FailingBlocks)
		}
		t.Logf("\t%s\tShould report a healthy chain as valid.", success)

		if err := db.CorruptBlock(2, 999999); err != nil {
			t.Fatalf("\t%s\tShould be able to corrupt block 2: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to corrupt block 2.", success)

		status = db.Validate()
		if status.Valid {
			t.Fatalf("\t%s\tShould report the tampered chain as invalid.", failed)
		}
		t.Logf("\t%s\tShould report the tampered chain as invalid.", success)

		exp := []uint64{2, 3}
		if len(status.FailingBlocks) != len(exp) {
			t.Fatalf("\t%s\tShould fail blocks %v: got %v", failed, exp, status.FailingBlocks)
		}
		for i, num := range exp {
			if status.FailingBlocks[i] != num {
				t.Fatalf("\t%s\tShould fail blocks %v: got %v", failed, exp, status.FailingBlocks)
			}
		}
		t.Logf("\t%s\tShould fail the tampered block and every block after it.", success)

		// The stored hash of the tampered block must be untouched, only the
		// recomputed digest may differ.
		block, err := db.GetBlock(2)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to read block 2: %s", failed, err)
		}
		if block.Hash == block.ComputeHash() {
			t.Fatalf("\t%s\tShould not have recomputed the tampered block's hash.", failed)
		}
		t.Logf("\t%s\tShould not have recomputed the tampered block's hash.", success)
	}
}

func TestCorruptBlockErrors(t *testing.T) {
	t.Log("Given the need to reject tamper requests that can't be served.")
	{
		db := newDatabase(t)

		if err := db.CorruptBlock(0, 1); !errors.Is(err, database.ErrNoTransactionsSet) {
			t.Fatalf("\t%s\tShould reject tampering the empty genesis block: got %v", failed, err)
		}
		t.Logf("\t%s\tShould reject tampering the empty genesis block.", success)

		if err := db.CorruptBlock(5, 1); !errors.Is(err, database.ErrUnknownBlock) {
			t.Fatalf("\t%s\tShould reject an unknown block number: got %v", failed, err)
		}
		t.Logf("\t%s\tShould reject an unknown block number.", success)
	}
}

func TestApplyTransaction(t *testing.T) {
	t.Log("Given the need to move funds between accounts when a block commits.")
	{
		db := newDatabase(t)

		if err := db.ApplyTransaction(database.NewTx("Alice", "Bob", 10)); err != nil {
			t.Fatalf("\t%s\tShould apply a covered transfer: %s", failed, err)
		}
		t.Logf("\t%s\tShould apply a covered transfer.", success)

		accounts := db.CopyAccounts()
		if accounts["Alice"] != 90 || accounts["Bob"] != 10 {
			t.Fatalf("\t%s\tShould have Alice 90 and Bob 10: got %d and %d", failed, accounts["Alice"], accounts["Bob"])
		}
		t.Logf("\t%s\tShould have Alice 90 and Bob 10.", success)

		if err := db.ApplyTransaction(database.NewTx("Bob", "Alice", 500)); err == nil {
			t.Fatalf("\t%s\tShould reject a transfer the sender can't cover.", failed)
		}
		t.Logf("\t%s\tShould reject a transfer the sender can't cover.", success)
	}
}

func TestReset(t *testing.T) {
	t.Log("Given the need to reset the chain back to genesis.")
	{
		db := newDatabase(t)
		genesisHash := db.LatestBlock().Hash

		mineNext(t, db, []database.Tx{database.NewTx("Alice", "Bob", 10)})

		if err := db.Reset(); err != nil {
			t.Fatalf("\t%s\tShould be able to reset the database: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to reset the database.", success)

		blocks := db.AllBlocks()
		if len(blocks) != 1 {
			t.Fatalf("\t%s\tShould be back to the genesis-only chain: got %d blocks", failed, len(blocks))
		}
		t.Logf("\t%s\tShould be back to the genesis-only chain.", success)

		if db.LatestBlock().Hash != genesisHash {
			t.Fatalf("\t%s\tShould reproduce the identical genesis block.", failed)
		}
		t.Logf("\t%s\tShould reproduce the identical genesis block.", success)

		if db.CopyAccounts()["Alice"] != 100 {
			t.Fatalf("\t%s\tShould restore the genesis balances.", failed)
		}
		t.Logf("\t%s\tShould restore the genesis balances.", success)
	}
}
