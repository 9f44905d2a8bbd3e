package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/submit"
)

// ChainLookup is the Koios surface the gateway relays.
type ChainLookup interface {
	AddressInfo(ctx context.Context, addresses []string) ([]byte, error)
	AddressUTXO(ctx context.Context, addresses []string) ([]byte, error)
	TxInfo(ctx context.Context, hashes []string) ([]byte, error)
}

// ScriptSource yields the compiled script hex, if any.
type ScriptSource interface {
	Read() (string, bool)
}

// Gateway holds the per-process dependencies of every handler. It carries no
// mutable state, so handlers run concurrently without locking.
type Gateway struct {
	Koios     ChainLookup
	Submitter submit.Submitter
	Script    ScriptSource
	Now       func() time.Time
	Logger    *zap.Logger
}

func NewGateway(koios ChainLookup, submitter submit.Submitter, script ScriptSource, logger *zap.Logger) *Gateway {
	return &Gateway{
		Koios:     koios,
		Submitter: submitter,
		Script:    script,
		Now:       time.Now,
		Logger:    logger,
	}
}

const isoMillis = "2006-01-02T15:04:05.000Z"

// GET /health
func (g *Gateway) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   g.Now().UTC().Format(isoMillis),
	})
}

// GET /
func (g *Gateway) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("cardano-gateway root"))
}

func (g *Gateway) log(r *http.Request) *zap.Logger {
	return LoggerFrom(r.Context(), g.Logger)
}
