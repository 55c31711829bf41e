// Package database handles the chain of blocks and the in memory account
// balances for the node.
package database

import (
	"errors"
	"fmt"
	"sync"

	"github.com/educhain/educhain/foundation/blockchain/genesis"
)

// Set of errors the database can return.
var (
	ErrUnknownBlock      = errors.New("block not found in the chain")
	ErrNoTransactionsSet = errors.New("block has no transactions to tamper")
	ErrNotNextBlock      = errors.New("block is not the next block in the chain")
)

// Storage interface represents the behavior required to be implemented by
// any package providing support for storing and reading the chain of blocks.
type Storage interface {
	Write(block Block) error
	GetBlock(num uint64) (Block, error)
	Update(block Block) error
	All() []Block
	Reset() error
	Close() error
}

// =============================================================================

// ChainStatus reports the outcome of a full chain validation. FailingBlocks
// identifies every block number that failed a check, starting with the first
// tampered block.
type ChainStatus struct {
	Valid         bool     `json:"valid"`
	FailingBlocks []uint64 `json:"failing_blocks,omitempty"`
}

// Database manages the chain of blocks and data related to accounts who
// have transacted on the blockchain.
type Database struct {
	mu sync.RWMutex

	genesis     genesis.Genesis
	latestBlock Block
	accounts    map[AccountID]uint

	storage Storage
}

// New constructs a new database, applies the account genesis information
// and writes the genesis block to storage.
func New(gen genesis.Genesis, storage Storage) (*Database, error) {
	db := Database{
		genesis: gen,
		storage: storage,
	}

	if err := db.reset(); err != nil {
		return nil, err
	}

	return &db, nil
}

// Close closes the underlying block storage.
func (db *Database) Close() {
	db.storage.Close()
}

// Reset re-initializes the database back to the genesis state. Only the
// chain and the balances are reset here. The replay guard is owned by the
// caller and clearing it must be an explicit, separate decision.
func (db *Database) Reset() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.reset()
}

func (db *Database) reset() error {
	if err := db.storage.Reset(); err != nil {
		return err
	}

	gb := NewGenesisBlock(db.genesis)
	if err := db.storage.Write(gb); err != nil {
		return err
	}
	db.latestBlock = gb

	db.accounts = make(map[AccountID]uint)
	for account, balance := range db.genesis.Balances {
		db.accounts[AccountID(account)] = balance
	}

	return nil
}

// LatestBlock returns the block at the tip of the chain.
func (db *Database) LatestBlock() Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.latestBlock
}

// Write adds a new block to the tip of the chain. The block's content is
// recorded exactly as given, the structural contiguity of the chain is the
// only thing enforced here.
func (db *Database) Write(block Block) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if block.Header.Number != db.latestBlock.Header.Number+1 {
		return fmt.Errorf("got block number %d, exp %d: %w", block.Header.Number, db.latestBlock.Header.Number+1, ErrNotNextBlock)
	}

	if err := db.storage.Write(block); err != nil {
		return err
	}
	db.latestBlock = block

	return nil
}

// GetBlock returns the block stored under the specified number.
func (db *Database) GetBlock(num uint64) (Block, error) {
	return db.storage.GetBlock(num)
}

// AllBlocks returns a copy of every block in the chain in order.
func (db *Database) AllBlocks() []Block {
	return db.storage.All()
}

// =============================================================================

// ApplyTransaction performs the business logic for applying a transaction
// to the account balances.
func (db *Database) ApplyTransaction(tx Tx) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	from := db.accounts[tx.FromID]
	to := db.accounts[tx.ToID]

	if from < tx.Value {
		return fmt.Errorf("insufficient funds, bal %d, needed %d", from, tx.Value)
	}

	from -= tx.Value
	to += tx.Value

	db.accounts[tx.FromID] = from
	db.accounts[tx.ToID] = to

	return nil
}

// CopyAccounts makes a copy of the current account balances.
func (db *Database) CopyAccounts() map[AccountID]uint {
	db.mu.RLock()
	defer db.mu.RUnlock()

	accounts := make(map[AccountID]uint)
	for accountID, balance := range db.accounts {
		accounts[accountID] = balance
	}

	return accounts
}

// =============================================================================

// CorruptBlock deliberately overwrites the value of the first transaction
// inside the specified block without recomputing any hash. This exists to
// demonstrate tamper detection, the next call to Validate will flag this
// block and every block after it.
func (db *Database) CorruptBlock(num uint64, value uint) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	block, err := db.storage.GetBlock(num)
	if err != nil {
		return err
	}

	if len(block.Trans) == 0 {
		return ErrNoTransactionsSet
	}

	block.Trans[0].Value = value

	return db.storage.Update(block)
}

// Validate walks the chain from the block after genesis, recomputing each
// block's digest. A block fails when its stored hash no longer matches the
// recomputed digest, when its previous hash doesn't match the recomputed
// digest of its predecessor, or when its predecessor already failed. Once a
// block is bad nothing after it can be trusted.
func (db *Database) Validate() ChainStatus {
	db.mu.RLock()
	defer db.mu.RUnlock()

	blocks := db.storage.All()

	status := ChainStatus{Valid: true}

	prevHash := blocks[0].ComputeHash()
	prevFailed := false

	for _, block := range blocks[1:] {
		hash := block.ComputeHash()

		selfOK := hash == block.Hash
		linkOK := block.Header.PrevBlockHash == prevHash

		if !selfOK || !linkOK || prevFailed {
			status.Valid = false
			status.FailingBlocks = append(status.FailingBlocks, block.Header.Number)
			prevFailed = true
		}

		prevHash = hash
	}

	return status
}
