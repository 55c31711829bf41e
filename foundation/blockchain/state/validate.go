package state

import "github.com/educhain/educhain/foundation/blockchain/database"

// Validate walks the whole chain checking every block's stored hash against
// its recomputed digest and every block's previous hash against its
// predecessor. An invalid result is a normal outcome after tampering, not
// a failure of the operation itself.
func (s *State) Validate() database.ChainStatus {
	status := s.db.Validate()

	if status.Valid {
		s.evHandler("state: Validate: chain is valid: blocks[%d]", len(s.db.AllBlocks()))
	} else {
		s.evHandler("state: Validate: CHAIN INVALID: failing blocks%v", status.FailingBlocks)
	}

	return status
}

// CorruptBlock deliberately tampers with the transaction data of the
// specified block without recomputing its hash. The damage is meant to be
// observable, the next Validate call reports the block and everything
// after it as invalid.
func (s *State) CorruptBlock(num uint64, value uint) error {
	s.evHandler("state: CorruptBlock: TAMPER: blk[%d] new value[%d]", num, value)

	return s.db.CorruptBlock(num, value)
}
