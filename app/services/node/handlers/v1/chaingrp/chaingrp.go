// Package chaingrp maintains the group of handlers for chain access.
package chaingrp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/educhain/educhain/business/sys/validate"
	v1 "github.com/educhain/educhain/business/web/v1"
	"github.com/educhain/educhain/foundation/blockchain/database"
	"github.com/educhain/educhain/foundation/blockchain/replay"
	"github.com/educhain/educhain/foundation/blockchain/state"
	"github.com/educhain/educhain/foundation/events"
	"github.com/educhain/educhain/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of chain endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// SubmitTransaction adds a new transaction to the pending pool. A replayed
// id is rejected with a conflict when the caller asked for secure mode.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var app newTx
	if err := web.Decode(r, &app); err != nil {
		return err
	}
	if err := validate.Check(app); err != nil {
		return err
	}

	dbTx := database.NewTx(database.AccountID(app.From), database.AccountID(app.To), uint(app.Value))
	if app.ID != "" {
		dbTx.ID = app.ID
	}

	secure := true
	if app.Secure != nil {
		secure = *app.Secure
	}

	h.Log.Infow("submit tran", "traceid", v.TraceID, "tx", dbTx.ID, "from", app.From, "to", app.To, "value", app.Value, "secure", secure)

	if err := h.State.SubmitTransaction(dbTx, secure); err != nil {
		if errors.Is(err, replay.ErrDuplicateID) {
			return v1.NewRequestError(err, http.StatusConflict)
		}
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	resp := struct {
		Status string `json:"status"`
		Tx     tx     `json:"tx"`
	}{
		Status: "transaction added to pending pool",
		Tx:     toTx(dbTx),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mempool returns the set of uncommitted transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	pool := h.State.RetrieveMempool()

	trans := make([]tx, len(pool))
	for i, dbTx := range pool {
		trans[i] = toTx(dbTx)
	}

	return web.Respond(ctx, w, trans, http.StatusOK)
}

// Mine performs the proof of work to mine the pending transactions into
// the next block. The search runs on the request goroutine, walking away
// from the request cancels the search.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	block, stats, err := h.State.MineNewBlock(ctx)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrNoTransactions):
			return v1.NewRequestError(err, http.StatusBadRequest)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return v1.NewRequestError(errors.New("mining aborted"), http.StatusRequestTimeout)
		}
		return err
	}

	h.Log.Infow("block mined", "traceid", v.TraceID, "number", block.Header.Number, "hash", block.Hash, "attempts", stats.Attempts, "elapsed", stats.Elapsed)

	result := mineResult{
		Number:     block.Header.Number,
		Hash:       block.Hash,
		Nonce:      block.Header.Nonce,
		Difficulty: block.Header.Difficulty,
		Attempts:   stats.Attempts,
		Elapsed:    stats.Elapsed,
	}

	return web.Respond(ctx, w, result, http.StatusOK)
}

// Blocks returns the chain of blocks for display.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	dbBlocks := h.State.RetrieveBlocks()

	blocks := make([]block, len(dbBlocks))
	for i, dbBlock := range dbBlocks {
		blocks[i] = toBlock(dbBlock)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// Validate walks the chain and reports which blocks fail their checks. An
// invalid chain is a 200 response, tampering is an expected demo outcome.
func (h Handlers) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	status := h.State.Validate()
	return web.Respond(ctx, w, status, http.StatusOK)
}

// Corrupt tampers with the transaction data of the specified block. This
// exists so the dashboard can demonstrate tamper detection.
func (h Handlers) Corrupt(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app corruptBlock
	if err := web.Decode(r, &app); err != nil {
		return err
	}
	if err := validate.Check(app); err != nil {
		return err
	}

	if err := h.State.CorruptBlock(app.Number, app.Value); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	resp := struct {
		Status string `json:"status"`
		Number uint64 `json:"number"`
	}{
		Status: "block tampered",
		Number: app.Number,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Reset re-initializes the chain back to the genesis-only condition.
func (h Handlers) Reset(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app resetChain
	if err := web.Decode(r, &app); err != nil {
		return err
	}

	if err := h.State.Reset(); err != nil {
		return err
	}
	if app.ClearReplayGuard {
		h.State.ResetReplayGuard()
	}

	resp := struct {
		Status           string `json:"status"`
		ClearReplayGuard bool   `json:"clear_replay_guard"`
	}{
		Status:           "chain reset to genesis",
		ClearReplayGuard: app.ClearReplayGuard,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Difficulty returns the difficulty the next block will be mined at.
func (h Handlers) Difficulty(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := struct {
		Difficulty uint `json:"difficulty"`
	}{
		Difficulty: h.State.CurrentDifficulty(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SetDifficulty overrides the difficulty for the next mining operation.
func (h Handlers) SetDifficulty(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app setDifficulty
	if err := web.Decode(r, &app); err != nil {
		return err
	}
	if err := validate.Check(app); err != nil {
		return err
	}

	if err := h.State.SetDifficulty(app.Level); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	resp := struct {
		Difficulty uint `json:"difficulty"`
	}{
		Difficulty: app.Level,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Accounts returns the current balances for all accounts.
func (h Handlers) Accounts(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	accounts := h.State.Accounts()

	resp := make(map[string]uint, len(accounts))
	for accountID, balance := range accounts {
		resp[string(accountID)] = balance
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	h.Log.Infow("events", "traceid", v.TraceID, "status", "web socket open")

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}
