package chaingrp

import (
	"time"

	"github.com/educhain/educhain/foundation/blockchain/database"
)

// newTx is what the dashboard submits to create a transaction. The id is
// optional, supplying one replays a previously captured transaction. Secure
// defaults to true, the caller has to opt in to the vulnerable mode.
type newTx struct {
	From   string `json:"from" validate:"required"`
	To     string `json:"to" validate:"required"`
	Value  int    `json:"value" validate:"gte=0"`
	ID     string `json:"id"`
	Secure *bool  `json:"secure"`
}

// tx represents a transaction returned by the API.
type tx struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Value     uint   `json:"value"`
	TimeStamp uint64 `json:"timestamp"`
}

func toTx(dbTx database.Tx) tx {
	return tx{
		ID:        dbTx.ID,
		From:      string(dbTx.FromID),
		To:        string(dbTx.ToID),
		Value:     dbTx.Value,
		TimeStamp: dbTx.TimeStamp,
	}
}

// block represents a block returned by the API.
type block struct {
	Number        uint64 `json:"number"`
	PrevBlockHash string `json:"prev_block_hash"`
	TimeStamp     uint64 `json:"timestamp"`
	Difficulty    uint   `json:"difficulty"`
	Nonce         uint64 `json:"nonce"`
	Hash          string `json:"hash"`
	Transactions  []tx   `json:"transactions"`
}

func toBlock(dbBlock database.Block) block {
	trans := make([]tx, len(dbBlock.Trans))
	for i, dbTx := range dbBlock.Trans {
		trans[i] = toTx(dbTx)
	}

	return block{
		Number:        dbBlock.Header.Number,
		PrevBlockHash: dbBlock.Header.PrevBlockHash,
		TimeStamp:     dbBlock.Header.TimeStamp,
		Difficulty:    dbBlock.Header.Difficulty,
		Nonce:         dbBlock.Header.Nonce,
		Hash:          dbBlock.Hash,
		Transactions:  trans,
	}
}

// mineResult reports the outcome of a successful mining operation.
type mineResult struct {
	Number     uint64        `json:"number"`
	Hash       string        `json:"hash"`
	Nonce      uint64        `json:"nonce"`
	Difficulty uint          `json:"difficulty"`
	Attempts   uint64        `json:"attempts"`
	Elapsed    time.Duration `json:"elapsed"`
}

// corruptBlock asks for a block's transaction data to be tampered with.
type corruptBlock struct {
	Number uint64 `json:"number" validate:"gte=1"`
	Value  uint   `json:"value"`
}

// resetChain asks for the chain to go back to genesis. Clearing the replay
// guard along with it has to be an explicit choice.
type resetChain struct {
	ClearReplayGuard bool `json:"clear_replay_guard"`
}

// setDifficulty overrides the mining difficulty. The upper bound keeps a
// demo node from wedging itself on an impossible search.
type setDifficulty struct {
	Level uint `json:"level" validate:"gte=1,lte=6"`
}
