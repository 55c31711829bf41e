package state

import (
	"errors"
	"fmt"

	"github.com/educhain/educhain/foundation/blockchain/database"
)

// ErrMissingAccount is returned when a transaction doesn't name both
// parties.
var ErrMissingAccount = errors.New("transaction must specify from and to accounts")

// SubmitTransaction accepts a transaction into the pending pool. The replay
// guard is consulted first so a rejected replay never shows up in the
// pending list. With secure off the duplicate is let through on purpose,
// that is the vulnerable baseline the node demonstrates.
func (s *State) SubmitTransaction(tx database.Tx, secure bool) error {
	if tx.FromID == "" || tx.ToID == "" {
		return ErrMissingAccount
	}

	if err := s.guard.Admit(tx.ID, secure); err != nil {
		s.evHandler("state: SubmitTransaction: REJECTED: tx[%s]: %s", tx.ID, err)
		return fmt.Errorf("tx[%s]: %w", tx.ID, err)
	}

	count := s.mempool.Add(tx)
	s.evHandler("state: SubmitTransaction: tx[%s] %s -> %s value[%d]: total pending[%d]", tx.ID, tx.FromID, tx.ToID, tx.Value, count)

	return nil
}
