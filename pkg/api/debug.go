package api

import (
	"net/http"

	"github.com/shuliakovsky/cardano-gateway/pkg/unsigned"
)

type decodeRequest struct {
	Hex string `json:"hex"`
}

// POST /debug/decode-unsigned
func (g *Gateway) DecodeUnsigned(w http.ResponseWriter, r *http.Request) {
	var req decodeRequest
	if !bindJSON(w, r, &req, "hex required") {
		return
	}
	if req.Hex == "" {
		writeError(w, http.StatusBadRequest, "hex required")
		return
	}

	decoded, err := unsigned.Decode(req.Hex)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "cannot decode hex", Details: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "decoded": decoded})
}
