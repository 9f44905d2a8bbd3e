package submit

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/providers"
	"github.com/shuliakovsky/cardano-gateway/pkg/transport"
)

func TestNew_SelectsByProjectID(t *testing.T) {
	require.Equal(t, ModeMock, New(providers.Blockfrost{}, "", zap.NewNop()).Mode())
	require.Equal(t, ModeBlockfrost, New(providers.Blockfrost{ProjectID: "k", TimeoutMs: 1000}, "", zap.NewNop()).Mode())
}

func TestMock_Submit(t *testing.T) {
	m := &Mock{Now: func() time.Time { return time.UnixMilli(1700000000123) }}
	res, err := m.Submit(context.Background(), "anything")
	require.NoError(t, err)
	require.Equal(t, "mocked_txid_1700000000123", res.TxID)
	require.Equal(t, "mock-submitted", res.Message)
	require.Empty(t, res.Source)
}

func TestDecodeSignedTx(t *testing.T) {
	raw, err := DecodeSignedTx("84a400")
	require.NoError(t, err)
	require.Equal(t, []byte{0x84, 0xa4, 0x00}, raw)

	// "deadbeef" is valid base64 too; the hex reading wins.
	raw, err = DecodeSignedTx("deadbeef")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, raw)

	raw, err = DecodeSignedTx(base64.StdEncoding.EncodeToString([]byte{0x84, 0xff}))
	require.NoError(t, err)
	require.Equal(t, []byte{0x84, 0xff}, raw)

	_, err = DecodeSignedTx("abc")
	require.Equal(t, ErrBadEncoding, errors.Cause(err))

	_, err = DecodeSignedTx("not base64 !!")
	require.Equal(t, ErrBadEncoding, errors.Cause(err))

	_, err = DecodeSignedTx("  ")
	require.Equal(t, ErrBadEncoding, errors.Cause(err))
}

func newBlockfrost(url string) *Blockfrost {
	return NewBlockfrost(providers.Blockfrost{
		BaseURL:    url + "/api/v0",
		ProjectID:  "mainnetKEY",
		SubmitPath: "tx/submit",
		TimeoutMs:  2000,
	}, "", zap.NewNop())
}

func TestBlockfrost_SubmitHex(t *testing.T) {
	var gotBody []byte
	var gotCT, gotKey, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCT = r.Header.Get("Content-Type")
		gotKey = r.Header.Get("project_id")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`"4f3c2a"`))
	}))
	defer srv.Close()

	res, err := newBlockfrost(srv.URL).Submit(context.Background(), "deadbeef")
	require.NoError(t, err)
	require.Equal(t, "4f3c2a", res.TxID)
	require.Equal(t, "blockfrost", res.Source)
	require.Equal(t, "/api/v0/tx/submit", gotPath)
	require.Equal(t, "application/cbor", gotCT)
	require.Equal(t, "mainnetKEY", gotKey)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, gotBody)
}

func TestBlockfrost_SubmitPlainTextTxID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("abcd1234\n"))
	}))
	defer srv.Close()

	res, err := newBlockfrost(srv.URL).Submit(context.Background(), base64.StdEncoding.EncodeToString([]byte("tx")))
	require.NoError(t, err)
	require.Equal(t, "abcd1234", res.TxID)
}

func TestBlockfrost_BadEncodingNeverCallsUpstream(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newBlockfrost(srv.URL).Submit(context.Background(), "%%%")
	require.Equal(t, ErrBadEncoding, errors.Cause(err))
	require.False(t, called)
}

func TestBlockfrost_UpstreamRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status_code":400,"error":"Bad Request","message":"transaction submit error"}`))
	}))
	defer srv.Close()

	_, err := newBlockfrost(srv.URL).Submit(context.Background(), "84a4")
	var ue *transport.UpstreamError
	require.True(t, errors.As(err, &ue))
	require.True(t, strings.Contains(string(ue.Body), "transaction submit error"))
}

func TestBlockfrost_Health(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v0/health", r.URL.Path)
		require.Equal(t, "mainnetKEY", r.Header.Get("project_id"))
		if healthy {
			_, _ = w.Write([]byte(`{"is_healthy":true}`))
			return
		}
		_, _ = w.Write([]byte(`{"is_healthy":false}`))
	}))
	defer srv.Close()

	bf := newBlockfrost(srv.URL)
	require.NoError(t, bf.Health(context.Background()))
	healthy = false
	require.Error(t, bf.Health(context.Background()))
}
