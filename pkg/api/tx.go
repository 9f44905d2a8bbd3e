package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/lovelace"
	"github.com/shuliakovsky/cardano-gateway/pkg/metrics"
	"github.com/shuliakovsky/cardano-gateway/pkg/submit"
	"github.com/shuliakovsky/cardano-gateway/pkg/transport"
	"github.com/shuliakovsky/cardano-gateway/pkg/unsigned"
)

const buildRequired = "to_address and amount_lovelace required"

type buildRequest struct {
	ToAddress      string          `json:"to_address"`
	AmountLovelace json.Number     `json:"amount_lovelace"`
	AmountADA      any             `json:"amount_ada"`
	Metadata       json.RawMessage `json:"metadata"`
}

type output struct {
	Address        string      `json:"address"`
	AmountLovelace json.Number `json:"amount_lovelace"`
}

type buildResponse struct {
	OK          bool     `json:"ok"`
	UnsignedHex string   `json:"unsigned_hex"`
	Outputs     []output `json:"outputs"`
	ScriptHex   *string  `json:"script_hex"`
}

// POST /build-unsigned-tx
func (g *Gateway) BuildUnsignedTx(w http.ResponseWriter, r *http.Request) {
	var req buildRequest
	if !bindJSON(w, r, &req, buildRequired) {
		return
	}
	if req.AmountLovelace == "" && req.AmountADA != nil {
		n, ok := lovelace.FromADA(req.AmountADA)
		if !ok {
			writeError(w, http.StatusBadRequest, "amount_ada must be a non-negative number")
			return
		}
		req.AmountLovelace = json.Number(strconv.FormatInt(n, 10))
	}
	amount, err := lovelace.Parse(req.AmountLovelace.String())
	switch {
	case req.ToAddress == "" || req.AmountLovelace == "" || errors.Is(err, lovelace.ErrInvalid) || (err == nil && amount == 0):
		writeError(w, http.StatusBadRequest, buildRequired)
		return
	case errors.Is(err, lovelace.ErrNegative):
		writeError(w, http.StatusBadRequest, "amount_lovelace must be positive")
		return
	case errors.Is(err, lovelace.ErrFractional):
		writeError(w, http.StatusBadRequest, "amount_lovelace must be an integer")
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, "amount_lovelace out of range")
		return
	}
	req.AmountLovelace = json.Number(strconv.FormatInt(amount, 10))

	payload := unsigned.New(req.ToAddress, req.AmountLovelace, falsyToNull(req.Metadata), g.Now())
	hex, err := unsigned.Encode(payload)
	if err != nil {
		g.log(r).Error("build_unsigned_tx_error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_server_error")
		return
	}

	resp := buildResponse{
		OK:          true,
		UnsignedHex: hex,
		Outputs:     []output{{Address: req.ToAddress, AmountLovelace: req.AmountLovelace}},
	}
	if script, ok := g.Script.Read(); ok {
		resp.ScriptHex = &script
	}
	g.log(r).Info("unsigned_tx_built",
		zap.String("to", req.ToAddress),
		zap.String("amount_lovelace", req.AmountLovelace.String()),
		zap.Bool("script_attached", resp.ScriptHex != nil),
	)
	writeJSON(w, http.StatusOK, resp)
}

type submitRequest struct {
	SignedTx any `json:"signed_tx"`
}

type submitResponse struct {
	OK bool `json:"ok"`
	submit.Result
}

// POST /submit-tx
func (g *Gateway) SubmitTx(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !bindJSON(w, r, &req, "signed_tx required") {
		return
	}
	if !truthy(req.SignedTx) {
		writeError(w, http.StatusBadRequest, "signed_tx required")
		return
	}
	signed, ok := req.SignedTx.(string)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_signed_tx", Details: "signed_tx must be a hex or base64 string"})
		return
	}

	res, err := g.Submitter.Submit(r.Context(), signed)
	if err != nil {
		if errors.Cause(err) == submit.ErrBadEncoding {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_signed_tx", Details: err.Error()})
			return
		}
		detail := transport.Detail(err)
		g.log(r).Error("blockfrost_submit_error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "blockfrost_submit_failed", Detail: detail})
		return
	}

	metrics.Submissions.WithLabelValues(g.Submitter.Mode()).Inc()
	g.log(r).Info("tx_submitted", zap.String("mode", g.Submitter.Mode()), zap.String("txid", res.TxID))
	writeJSON(w, http.StatusOK, submitResponse{OK: true, Result: res})
}

// falsyToNull maps JSON false, "" and any numeric zero to null, leaving other
// values intact.
func falsyToNull(raw json.RawMessage) json.RawMessage {
	v := string(bytes.TrimSpace(raw))
	switch v {
	case "", "null", "false", `""`:
		return nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == 0 {
		return nil
	}
	return raw
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}
