package api

import "net/http"

// Register mounts the gateway operations on mux.
func (g *Gateway) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", g.Health)
	mux.HandleFunc("GET /{$}", g.Root)

	mux.HandleFunc("GET /koios/address_info", g.AddressInfoQuery)
	mux.HandleFunc("POST /koios/address_info", g.AddressInfo)
	mux.HandleFunc("POST /koios/address_utxo", g.AddressUTXO)

	mux.HandleFunc("GET /tx/{hash}", g.TxInfo)
	mux.HandleFunc("POST /verify-tx", g.VerifyTx)

	mux.HandleFunc("POST /build-unsigned-tx", g.BuildUnsignedTx)
	mux.HandleFunc("POST /submit-tx", g.SubmitTx)

	mux.HandleFunc("POST /debug/decode-unsigned", g.DecodeUnsigned)
}

// Wrap applies the middleware chain shared by every route.
func Wrap(h http.Handler, g *Gateway) http.Handler {
	return WithRequestID(g.Logger, WithMetrics(WithRecover(g.Logger, h)))
}
