package main

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/providers"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"SERVER_HOST", "PORT", "SERVER_PORT", "PROVIDERS_FILE", "SCRIPT_HEX_PATH", "OUTBOUND_SOCKS5", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := loadConfig()
	require.Equal(t, "0.0.0.0", cfg.Host)
	require.Equal(t, "3001", cfg.Port)
	require.Equal(t, "configs/providers.yaml", cfg.ProvidersFile)
	require.Equal(t, "aiken/build/contract.plutus.hex", cfg.ScriptHexPath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_DotEnvAndPortPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SCRIPT_HEX_PATH", "")
	require.NoError(t, os.Unsetenv("SCRIPT_HEX_PATH"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SCRIPT_HEX_PATH=build/x.hex\n"), 0644))

	cfg := loadConfig()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "build/x.hex", cfg.ScriptHexPath)

	t.Setenv("PORT", "3005")
	require.Equal(t, "3005", loadConfig().Port)
}

func newTestHandler(t *testing.T, koiosURL string) http.Handler {
	t.Helper()
	prov := providers.Config{
		Koios: providers.Koios{
			BaseURL:         koiosURL,
			AddressInfoPath: "address_info",
			AddressUTXOPath: "address_utxo",
			TimeoutMs:       2000,
		},
		Blockfrost: providers.Blockfrost{BaseURL: providers.DefaultBlockfrostBase, SubmitPath: "tx/submit", TimeoutMs: 2000},
	}
	cfg := config{Host: "127.0.0.1", Port: "3001", ScriptHexPath: filepath.Join(t.TempDir(), "missing.hex")}
	gw, checker := initGateway(cfg, prov, zap.NewNop())
	return registerRoutes(gw, checker, cfg, zap.NewNop())
}

func TestRoutes_ReadyAndMetrics(t *testing.T) {
	koios := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"epoch_no":510,"block_no":11000000}]`))
	}))
	defer koios.Close()
	h := newTestHandler(t, koios.URL)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var rep map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	require.Equal(t, true, rep["ready"])
	require.NotContains(t, rep["providers"], "blockfrost")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "cgw_http_requests_total")
}

func TestRoutes_NotReadyWhenKoiosDown(t *testing.T) {
	koios := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer koios.Close()
	h := newTestHandler(t, koios.URL)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRoutes_SwaggerAndCORS(t *testing.T) {
	h := newTestHandler(t, "http://127.0.0.1:1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/build-unsigned-tx")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/submit-tx", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_MockSubmitWithoutKey(t *testing.T) {
	h := newTestHandler(t, "http://127.0.0.1:1")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/submit-tx", nil)
	req.Body = http.NoBody
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit-tx", strings.NewReader(`{"signed_tx":"84a4"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"txid":"mocked_txid_`)
}

func TestServe_DrainsInFlightRequest(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	started := make(chan struct{})
	var finished atomic.Bool
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		time.Sleep(300 * time.Millisecond)
		finished.Store(true)
		_, _ = w.Write([]byte("done"))
	})}

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- serve(ctx, srv, ln, zap.NewNop()) }()

	type reply struct {
		body string
		err  error
	}
	replies := make(chan reply, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/slow")
		if err != nil {
			replies <- reply{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		replies <- reply{body: string(b), err: err}
	}()

	<-started
	cancel()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after shutdown")
	}
	require.True(t, finished.Load(), "serve returned before the in-flight handler finished")

	r := <-replies
	require.NoError(t, r.err)
	require.Equal(t, "done", r.body)
}
