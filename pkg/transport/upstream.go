package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/metrics"
)

// UpstreamError is a non-2xx answer from a provider.
type UpstreamError struct {
	Provider string
	Status   int
	Body     []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s responded with status %d: %s", e.Provider, e.Status, LogSafe(e.Body))
}

// Do sends req, reads the whole body and turns non-2xx answers into *UpstreamError.
func Do(client *http.Client, req *http.Request, provider string, body []byte, logger *zap.Logger) ([]byte, error) {
	start := LogRequest(logger, provider, req.Method, req.URL.Path, body)

	resp, err := client.Do(req)
	if err != nil {
		metrics.ObserveUpstream(provider, "error", time.Since(start))
		return nil, errors.Wrapf(err, "%s request failed", provider)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveUpstream(provider, "error", time.Since(start))
		return nil, errors.Wrapf(err, "%s read body", provider)
	}
	LogResponse(logger, provider, resp.StatusCode, out, start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome := "error"
		if IsRateLimited(resp, out) {
			outcome = "rate_limited"
		}
		metrics.ObserveUpstream(provider, outcome, time.Since(start))
		return nil, &UpstreamError{Provider: provider, Status: resp.StatusCode, Body: out}
	}
	metrics.ObserveUpstream(provider, "ok", time.Since(start))
	return out, nil
}

// Detail is the client-facing description of a provider failure: the upstream
// JSON body when it has one, its text otherwise, else the error message.
func Detail(err error) any {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		if len(ue.Body) > 0 && gjson.ValidBytes(ue.Body) {
			return json.RawMessage(ue.Body)
		}
		if len(ue.Body) > 0 {
			return string(ue.Body)
		}
		return http.StatusText(ue.Status)
	}
	if err == nil {
		return nil
	}
	return err.Error()
}
