// Package state is the core API for the blockchain and implements all the
// business rules and processing.
package state

import (
	"sync"

	"github.com/educhain/educhain/foundation/blockchain/database"
	"github.com/educhain/educhain/foundation/blockchain/difficulty"
	"github.com/educhain/educhain/foundation/blockchain/genesis"
	"github.com/educhain/educhain/foundation/blockchain/mempool"
	"github.com/educhain/educhain/foundation/blockchain/replay"
)

// EventHandler defines a function that is called when events
// occur in the processing of mining and persisting blocks.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to start
// the blockchain node.
type Config struct {
	Genesis    genesis.Genesis
	Storage    database.Storage
	AutoAdjust bool
	EvHandler  EventHandler
}

// State manages the blockchain database, the pending transaction pool and
// the replay guard. There is exactly one State per running node and it is
// the only writer to the chain.
type State struct {
	mu sync.Mutex

	genesis    genesis.Genesis
	difficulty uint
	autoAdjust bool
	evHandler  EventHandler

	db         *database.Database
	mempool    *mempool.Mempool
	guard      *replay.Guard
	controller difficulty.Controller

	// Serializes mining so at most one search is in flight per chain.
	miningMu sync.Mutex
}

// New constructs a new blockchain for data management.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	// Access the storage for the blockchain. This writes the genesis
	// block as the root of the chain.
	db, err := database.New(cfg.Genesis, cfg.Storage)
	if err != nil {
		return nil, err
	}

	startDifficulty := cfg.Genesis.Difficulty
	if startDifficulty < difficulty.MinDifficulty {
		startDifficulty = difficulty.MinDifficulty
	}

	state := State{
		genesis:    cfg.Genesis,
		difficulty: startDifficulty,
		autoAdjust: cfg.AutoAdjust,
		evHandler:  ev,

		db:         db,
		mempool:    mempool.New(),
		guard:      replay.New(),
		controller: difficulty.New(cfg.Genesis.TargetBlockTime, cfg.Genesis.Tolerance),
	}

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {
	s.db.Close()
	return nil
}

// Reset re-initializes the chain to the genesis-only condition and clears
// the pending pool. The replay guard keeps its ids, clearing the guard is
// a separate explicit call so the decision can never be implicit.
func (s *State) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evHandler("state: Reset: chain back to genesis")

	if err := s.db.Reset(); err != nil {
		return err
	}
	s.mempool.Truncate()
	s.difficulty = s.genesis.Difficulty

	return nil
}

// ResetReplayGuard clears the set of known transaction ids.
func (s *State) ResetReplayGuard() {
	s.evHandler("state: ResetReplayGuard: clearing known transaction ids")
	s.guard.Reset()
}
