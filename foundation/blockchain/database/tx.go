package database

import (
	"time"

	"github.com/google/uuid"
)

// AccountID represents an account in the system. This chain is educational
// so accounts are plain names, there is no key material behind them.
type AccountID string

// Tx is the transactional information between two parties. A transaction
// is immutable once constructed and carries a unique id so the chain can
// detect a replayed submission.
type Tx struct {
	ID        string    `json:"id"`        // Unique id for the transaction.
	FromID    AccountID `json:"from"`      // Account sending the funds.
	ToID      AccountID `json:"to"`        // Account receiving the benefit of the transaction.
	Value     uint      `json:"value"`     // Monetary value received from this transaction.
	TimeStamp uint64    `json:"timestamp"` // The time the transaction was submitted.
}

// NewTx constructs a new transaction with a generated unique id.
func NewTx(fromID AccountID, toID AccountID, value uint) Tx {
	return Tx{
		ID:        uuid.NewString(),
		FromID:    fromID,
		ToID:      toID,
		Value:     value,
		TimeStamp: uint64(time.Now().UTC().Unix()),
	}
}
