package state

import (
	"errors"

	"github.com/educhain/educhain/foundation/blockchain/database"
	"github.com/educhain/educhain/foundation/blockchain/difficulty"
	"github.com/educhain/educhain/foundation/blockchain/genesis"
)

// ErrInvalidDifficulty is returned when a manual difficulty override is
// below the minimum.
var ErrInvalidDifficulty = errors.New("difficulty must be at least the minimum")

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveBlocks returns a copy of the full chain in order.
func (s *State) RetrieveBlocks() []database.Block {
	return s.db.AllBlocks()
}

// RetrieveLatestBlock returns a copy of the current tip of the chain.
func (s *State) RetrieveLatestBlock() database.Block {
	return s.db.LatestBlock()
}

// RetrieveMempool returns a copy of the pending transaction pool in
// submission order.
func (s *State) RetrieveMempool() []database.Tx {
	return s.mempool.Copy()
}

// Accounts returns a copy of the current account balances.
func (s *State) Accounts() map[database.AccountID]uint {
	return s.db.CopyAccounts()
}

// CurrentDifficulty returns the difficulty the next block will be mined at.
func (s *State) CurrentDifficulty() uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.difficulty
}

// SetDifficulty overrides the difficulty for the next mining operation.
func (s *State) SetDifficulty(level uint) error {
	if level < difficulty.MinDifficulty {
		return ErrInvalidDifficulty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evHandler("state: SetDifficulty: difficulty[%d] -> [%d]", s.difficulty, level)
	s.difficulty = level

	return nil
}
