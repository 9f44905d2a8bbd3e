package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/transport"
)

const addressesRequired = "addresses array required"

type addressesRequest struct {
	Addresses []string `json:"addresses"`
}

// POST /koios/address_info
// The list must be non-empty.
func (g *Gateway) AddressInfo(w http.ResponseWriter, r *http.Request) {
	var req addressesRequest
	if !bindJSON(w, r, &req, addressesRequired) {
		return
	}
	if len(req.Addresses) == 0 {
		writeError(w, http.StatusBadRequest, addressesRequired)
		return
	}

	out, err := g.Koios.AddressInfo(r.Context(), req.Addresses)
	if err != nil {
		g.koiosFailed(w, r, "koios_address_info_error", err)
		return
	}
	writeRaw(w, out)
}

// GET /koios/address_info?address=
func (g *Gateway) AddressInfoQuery(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		writeError(w, http.StatusBadRequest, "address query parameter required")
		return
	}

	out, err := g.Koios.AddressInfo(r.Context(), []string{address})
	if err != nil {
		g.koiosFailed(w, r, "koios_address_info_error", err)
		return
	}
	writeRaw(w, out)
}

// POST /koios/address_utxo
// The list must be present but may be empty.
func (g *Gateway) AddressUTXO(w http.ResponseWriter, r *http.Request) {
	var req addressesRequest
	if !bindJSON(w, r, &req, addressesRequired) {
		return
	}
	if req.Addresses == nil {
		writeError(w, http.StatusBadRequest, addressesRequired)
		return
	}

	out, err := g.Koios.AddressUTXO(r.Context(), req.Addresses)
	if err != nil {
		g.koiosFailed(w, r, "koios_address_utxo_error", err)
		return
	}
	writeRaw(w, out)
}

func (g *Gateway) koiosFailed(w http.ResponseWriter, r *http.Request, event string, err error) {
	detail := transport.Detail(err)
	g.log(r).Error(event, zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "koios_error", Detail: detail})
}
