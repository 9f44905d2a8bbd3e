package submit

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/providers"
	"github.com/shuliakovsky/cardano-gateway/pkg/secrets"
	"github.com/shuliakovsky/cardano-gateway/pkg/transport"
)

const provider = "blockfrost"

var (
	ErrBadEncoding = errors.New("signed_tx is neither hex nor base64")

	hexRe = regexp.MustCompile(`^[0-9a-fA-F]+$`)
)

type Blockfrost struct {
	Cfg    providers.Blockfrost
	HTTP   *http.Client
	Logger *zap.Logger
}

func NewBlockfrost(cfg providers.Blockfrost, socks5 string, logger *zap.Logger) *Blockfrost {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	return &Blockfrost{
		Cfg:    cfg,
		HTTP:   transport.NewClient(timeout, socks5, logger),
		Logger: logger,
	}
}

func (b *Blockfrost) Mode() string { return ModeBlockfrost }

func (b *Blockfrost) Submit(ctx context.Context, signedTx string) (Result, error) {
	raw, err := DecodeSignedTx(signedTx)
	if err != nil {
		return Result{}, err
	}

	url := providers.Join(b.Cfg.BaseURL, b.Cfg.SubmitPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return Result{}, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/cbor")
	req.Header.Set("project_id", b.Cfg.ProjectID)

	b.Logger.Info("blockfrost_submit",
		zap.String("url", url),
		zap.Int("tx_bytes", len(raw)),
		zap.Any("headers", secrets.Headers(req.Header)),
	)
	out, err := transport.Do(b.HTTP, req, provider, nil, b.Logger)
	if err != nil {
		return Result{}, err
	}
	return Result{TxID: txID(out), Source: provider}, nil
}

// DecodeSignedTx reads hex when the text looks like hex, base64 otherwise.
func DecodeSignedTx(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrBadEncoding
	}
	if hexRe.MatchString(s) {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Wrap(ErrBadEncoding, err.Error())
		}
		return raw, nil
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrBadEncoding, err.Error())
	}
	return raw, nil
}

// Blockfrost answers with the tx hash as a JSON string.
func txID(body []byte) string {
	if gjson.ValidBytes(body) {
		if res := gjson.ParseBytes(body); res.Type == gjson.String {
			return res.String()
		}
	}
	return strings.TrimSpace(string(body))
}

// Health calls Blockfrost's /health and checks is_healthy.
func (b *Blockfrost) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, providers.Join(b.Cfg.BaseURL, "health"), nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("project_id", b.Cfg.ProjectID)
	out, err := transport.Do(b.HTTP, req, provider, nil, b.Logger)
	if err != nil {
		return err
	}
	if !gjson.GetBytes(out, "is_healthy").Bool() {
		return errors.Errorf("blockfrost reports unhealthy: %s", transport.LogSafe(out))
	}
	return nil
}
