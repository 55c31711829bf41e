// Package memory implements the database.Storage interface keeping the
// chain of blocks in process memory. The chain exists only for the lifetime
// of the session, persistence to disk is not a goal of this node.
package memory

import (
	"fmt"
	"sync"

	"github.com/educhain/educhain/foundation/blockchain/database"
)

// Memory represents the storage implementation for reading and storing
// blocks in memory. Blocks are indexed by their block number.
type Memory struct {
	mu     sync.RWMutex
	blocks []database.Block
}

// New constructs an empty in memory block store.
func New() (*Memory, error) {
	return &Memory{}, nil
}

// Close in this implementation has nothing to release.
func (m *Memory) Close() error {
	return nil
}

// Reset clears all the blocks from the store.
func (m *Memory) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blocks = nil
	return nil
}

// Write appends a new block to the chain.
func (m *Memory) Write(block database.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if block.Header.Number != uint64(len(m.blocks)) {
		return fmt.Errorf("got block number %d, exp %d", block.Header.Number, len(m.blocks))
	}

	m.blocks = append(m.blocks, block)
	return nil
}

// GetBlock returns the specified block by number.
func (m *Memory) GetBlock(num uint64) (database.Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if num >= uint64(len(m.blocks)) {
		return database.Block{}, database.ErrUnknownBlock
	}

	return copyBlock(m.blocks[num]), nil
}

// Update replaces a block that already exists in the chain. This only
// serves the tamper demonstration, a healthy chain is append only.
func (m *Memory) Update(block database.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if block.Header.Number >= uint64(len(m.blocks)) {
		return database.ErrUnknownBlock
	}

	m.blocks[block.Header.Number] = block
	return nil
}

// All returns a copy of every block in chain order.
func (m *Memory) All() []database.Block {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blocks := make([]database.Block, len(m.blocks))
	for i, block := range m.blocks {
		blocks[i] = copyBlock(block)
	}

	return blocks
}

// copyBlock deep copies a block so callers can't reach the stored
// transaction slice. Tampering has to go through Update.
func copyBlock(b database.Block) database.Block {
	trans := make([]database.Tx, len(b.Trans))
	copy(trans, b.Trans)
	b.Trans = trans

	return b
}
