package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var txHashRe = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

const txHashInvalid = "tx hash must be 64 hex characters"

type verifyRequest struct {
	TxID string `json:"tx_id"`
}

// GET /tx/{hash}
func (g *Gateway) TxInfo(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("hash")
	if !txHashRe.MatchString(hash) {
		writeError(w, http.StatusBadRequest, txHashInvalid)
		return
	}
	tx, ok := g.lookupTx(w, r, hash)
	if !ok {
		return
	}
	writeRaw(w, tx)
}

// POST /verify-tx
func (g *Gateway) VerifyTx(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if !bindJSON(w, r, &req, "tx_id required") {
		return
	}
	if req.TxID == "" {
		writeError(w, http.StatusBadRequest, "tx_id required")
		return
	}
	if !txHashRe.MatchString(req.TxID) {
		writeError(w, http.StatusBadRequest, txHashInvalid)
		return
	}
	tx, ok := g.lookupTx(w, r, req.TxID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "tx": json.RawMessage(tx)})
}

// lookupTx returns the Koios record for hash, answering the request itself
// when the upstream fails or has no such transaction.
func (g *Gateway) lookupTx(w http.ResponseWriter, r *http.Request, hash string) ([]byte, bool) {
	out, err := g.Koios.TxInfo(r.Context(), []string{hash})
	if err != nil {
		g.koiosFailed(w, r, "koios_tx_info_error", err)
		return nil, false
	}
	first := gjson.GetBytes(out, "0")
	if !first.Exists() || !first.IsObject() {
		g.log(r).Info("tx_not_found", zap.String("tx_hash", hash))
		writeError(w, http.StatusNotFound, "tx_not_found")
		return nil, false
	}
	return []byte(first.Raw), true
}
