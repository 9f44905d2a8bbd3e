package api

import (
	"net/http"

	"github.com/shuliakovsky/cardano-gateway/pkg/health"
)

// Ready serves GET /readyz from the provider probes.
func Ready(checker *health.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep := checker.Check(r.Context())
		code := http.StatusOK
		if !rep.Ready {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, rep)
	}
}
