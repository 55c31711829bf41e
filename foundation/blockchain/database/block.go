package database

import (
	"context"
	"time"

	"github.com/educhain/educhain/foundation/blockchain/digest"
	"github.com/educhain/educhain/foundation/blockchain/genesis"
)

// BlockHeader represents common information required for each block.
type BlockHeader struct {
	Number        uint64 `json:"number"`          // Block number in the chain, 0 is the genesis block.
	PrevBlockHash string `json:"prev_block_hash"` // Hash of the previous block in the chain.
	TimeStamp     uint64 `json:"timestamp"`       // Time the block was mined, fixed when the search starts.
	Difficulty    uint   `json:"difficulty"`      // Number of leading zero hex digits needed to solve the hash solution.
	Nonce         uint64 `json:"nonce"`           // Value identified to solve the hash solution.
}

// Block represents a group of transactions batched together with the hash
// that was recorded when the block was mined. The stored hash is what chain
// validation compares a recomputed digest against.
type Block struct {
	Header BlockHeader `json:"header"`
	Trans  []Tx        `json:"trans"`
	Hash   string      `json:"hash"`
}

// content is the canonical representation of a block that is hashed. The
// stored hash itself is excluded so the digest is a pure function of the
// header fields and the ordered transaction list.
type content struct {
	Header BlockHeader `json:"header"`
	Trans  []Tx        `json:"trans"`
}

// ComputeHash recomputes the hash for the block's current content. For a
// block that has not been tampered with this matches the stored hash.
func (b Block) ComputeHash() string {
	return digest.Hash(content{Header: b.Header, Trans: b.Trans})
}

// NewGenesisBlock constructs the fixed first block of the chain. The content
// is derived from the genesis file alone so every reset reproduces the
// identical block and hash.
func NewGenesisBlock(gen genesis.Genesis) Block {
	b := Block{
		Header: BlockHeader{
			Number:        0,
			PrevBlockHash: digest.ZeroHash,
			TimeStamp:     uint64(gen.Date.UTC().Unix()),
			Difficulty:    1,
			Nonce:         0,
		},
	}
	b.Hash = b.ComputeHash()

	return b
}

// =============================================================================

// POWStats captures the cost of a mining run. The elapsed duration drives
// the difficulty adjustment for the next block.
type POWStats struct {
	Attempts uint64        `json:"attempts"`
	Elapsed  time.Duration `json:"elapsed"`
}

// POW constructs a new Block and performs the work to find a nonce that
// solves the cryptographic POW puzzle.
func POW(ctx context.Context, difficulty uint, prevBlock Block, trans []Tx, ev func(v string, args ...any)) (Block, POWStats, error) {
	ev("database: POW: MINING: started: difficulty[%d] trans[%d]", difficulty, len(trans))
	defer ev("database: POW: MINING: completed")

	// Construct the block to be mined. The timestamp is fixed here, before
	// the search starts, so the hash is a pure function of the header fields
	// and the nonce.
	nb := Block{
		Header: BlockHeader{
			Number:        prevBlock.Header.Number + 1,
			PrevBlockHash: prevBlock.Hash,
			TimeStamp:     uint64(time.Now().UTC().Unix()),
			Difficulty:    difficulty,
			Nonce:         0,
		},
		Trans: trans,
	}

	// Loop until a solution is found, starting the nonce at zero and
	// incrementing by one so the search is exhaustive over the nonce range.
	t := time.Now()
	var attempts uint64
	for {
		attempts++
		if attempts%1_000 == 0 {
			ev("database: POW: MINING: attempts[%d] nonce[%d]", attempts, nb.Header.Nonce)
		}

		// Did the caller cancel the search. No partial block may escape.
		if ctx.Err() != nil {
			ev("database: POW: MINING: CANCELLED")
			return Block{}, POWStats{}, ctx.Err()
		}

		// Hash the block and check if we have solved the puzzle.
		hash := nb.ComputeHash()
		if !isHashSolved(difficulty, hash) {
			nb.Header.Nonce++
			continue
		}

		nb.Hash = hash
		stats := POWStats{
			Attempts: attempts,
			Elapsed:  time.Since(t),
		}

		ev("database: POW: MINING: SOLVED: prevBlk[%s]: newBlk[%s]", nb.Header.PrevBlockHash, hash)
		ev("database: POW: MINING: attempts[%d] elapsed[%v]", attempts, stats.Elapsed)

		return nb, stats, nil
	}
}

// isHashSolved checks the hash to make sure it complies with the POW rules.
// We need to match a difficulty number of leading zero hex digits after the
// 0x prefix. Raising the difficulty strictly shrinks the set of hashes that
// qualify.
func isHashSolved(difficulty uint, hash string) bool {
	const match = "0000000000000000000000000000000000000000000000000000000000000000"

	if len(hash) != digest.HashLen {
		return false
	}
	if int(difficulty) > len(match) {
		return false
	}

	return hash[2:2+difficulty] == match[:difficulty]
}
