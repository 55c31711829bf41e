// Package mempool maintains the pool of transactions waiting to be mined
// into a block. Unlike a fee market chain there is no transaction selection
// strategy here, blocks take the whole pool in submission order.
package mempool

import (
	"sync"

	"github.com/educhain/educhain/foundation/blockchain/database"
)

// Mempool represents the ordered pool of pending transactions. Duplicate
// ids are allowed in the pool, blocking them is the replay guard's job and
// only when secure mode asks for it.
type Mempool struct {
	mu   sync.RWMutex
	pool []database.Tx
}

// New constructs a new mempool.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Add appends a transaction to the pool and returns the new pool size.
// Submission order is preserved, it becomes the transaction order inside
// the mined block.
func (mp *Mempool) Add(tx database.Tx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)
	return len(mp.pool)
}

// Contains reports whether a transaction with the specified id is
// currently pending.
func (mp *Mempool) Contains(id string) bool {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	for _, tx := range mp.pool {
		if tx.ID == id {
			return true
		}
	}

	return false
}

// Copy returns a snapshot of the pending transactions in submission order.
// Mining works against this snapshot so submissions that arrive while the
// search is running don't silently join the in-progress block.
func (mp *Mempool) Copy() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	txs := make([]database.Tx, len(mp.pool))
	copy(txs, mp.pool)

	return txs
}

// Drop removes the first howMany transactions from the pool. The caller
// uses this after a mined block commits, removing exactly the snapshot it
// mined and keeping anything submitted since.
func (mp *Mempool) Drop(howMany int) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if howMany > len(mp.pool) {
		howMany = len(mp.pool)
	}

	mp.pool = append([]database.Tx{}, mp.pool[howMany:]...)
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}
