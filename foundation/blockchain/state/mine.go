package state

import (
	"context"
	"errors"

	"github.com/educhain/educhain/foundation/blockchain/database"
)

// ErrNoTransactions is returned when a block is requested to be created
// and there are no pending transactions.
var ErrNoTransactions = errors.New("no transactions in mempool")

// MineNewBlock attempts to create a new block with a proper hash that can
// become the next block in the chain. The pending pool is snapshotted for
// the duration of the search, transactions submitted while mining runs wait
// for the next block. Cancelling the context aborts the search and leaves
// the chain and the pool exactly as they were.
func (s *State) MineNewBlock(ctx context.Context) (database.Block, database.POWStats, error) {

	// Only one mining operation may be in flight per chain.
	s.miningMu.Lock()
	defer s.miningMu.Unlock()

	s.evHandler("state: MineNewBlock: MINING: check mempool count")

	// Freeze the pool for this mining operation.
	trans := s.mempool.Copy()
	if len(trans) == 0 {
		return database.Block{}, database.POWStats{}, ErrNoTransactions
	}

	difficulty := s.CurrentDifficulty()

	s.evHandler("state: MineNewBlock: MINING: perform POW")

	// Attempt to create a new block by solving the POW puzzle.
	// This can be cancelled.
	block, stats, err := database.POW(ctx, difficulty, s.db.LatestBlock(), trans, s.evHandler)
	if err != nil {
		return database.Block{}, database.POWStats{}, err
	}

	// Just check one more time we were not cancelled.
	if ctx.Err() != nil {
		return database.Block{}, database.POWStats{}, ctx.Err()
	}

	s.evHandler("state: MineNewBlock: MINING: update local state")

	if err := s.commitBlock(block); err != nil {
		return database.Block{}, database.POWStats{}, err
	}

	// Retarget the difficulty for the next block from this run's duration.
	// Already mined blocks keep the difficulty they were mined at.
	if s.autoAdjust {
		s.adjustDifficulty(difficulty, stats)
	}

	return block, stats, nil
}

// commitBlock appends the mined block to the chain, applies the balance
// transfers and releases the mined transactions from the pool.
func (s *State) commitBlock(block database.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Append the new block to the chain.
	if err := s.db.Write(block); err != nil {
		return err
	}

	// Process the transactions and update the accounts. A transfer the
	// sender can't cover is recorded in the block regardless, it just
	// doesn't move any funds.
	for _, tx := range block.Trans {
		s.evHandler("state: commitBlock: tx[%s] apply and release", tx.ID)

		if err := s.db.ApplyTransaction(tx); err != nil {
			s.evHandler("state: commitBlock: WARNING: tx[%s]: %s", tx.ID, err)
		}

		// Make sure the id is known even when it was admitted with the
		// replay protection off.
		s.guard.Record(tx.ID)
	}

	// Remove exactly the mined snapshot, keeping anything submitted since.
	s.mempool.Drop(len(block.Trans))

	return nil
}

// adjustDifficulty recomputes the difficulty for the next mining operation.
func (s *State) adjustDifficulty(used uint, stats database.POWStats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.controller.Adjust(used, stats.Elapsed)
	if next != used {
		s.evHandler("state: adjustDifficulty: retarget: difficulty[%d] -> [%d]: elapsed[%v]", used, next, stats.Elapsed)
	}
	s.difficulty = next
}
