// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/educhain/educhain/app/services/node/handlers/v1/chaingrp"
	"github.com/educhain/educhain/foundation/blockchain/state"
	"github.com/educhain/educhain/foundation/events"
	"github.com/educhain/educhain/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	Evts  *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	cg := chaingrp.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/genesis/list", cg.Genesis)
	app.Handle(http.MethodGet, version, "/accounts/list", cg.Accounts)
	app.Handle(http.MethodGet, version, "/chain/list", cg.Blocks)
	app.Handle(http.MethodGet, version, "/chain/validate", cg.Validate)
	app.Handle(http.MethodPost, version, "/chain/corrupt", cg.Corrupt)
	app.Handle(http.MethodPost, version, "/chain/reset", cg.Reset)
	app.Handle(http.MethodGet, version, "/difficulty", cg.Difficulty)
	app.Handle(http.MethodPost, version, "/difficulty", cg.SetDifficulty)
	app.Handle(http.MethodGet, version, "/tx/uncommitted/list", cg.Mempool)
	app.Handle(http.MethodPost, version, "/tx/submit", cg.SubmitTransaction)
	app.Handle(http.MethodPost, version, "/mining/mine", cg.Mine)
	app.Handle(http.MethodGet, version, "/events", cg.Events)
}
