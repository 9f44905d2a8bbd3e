package koios

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/providers"
	"github.com/shuliakovsky/cardano-gateway/pkg/transport"
)

const provider = "koios"

// Client wraps the Koios address endpoints. Responses are returned verbatim.
type Client struct {
	Cfg    providers.Koios
	HTTP   *http.Client
	Logger *zap.Logger
}

func New(cfg providers.Koios, socks5 string, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	return &Client{
		Cfg:    cfg,
		HTTP:   transport.NewClient(timeout, socks5, logger),
		Logger: logger,
	}
}

type addressesRequest struct {
	Addresses []string `json:"_addresses"`
}

type txHashesRequest struct {
	TxHashes []string `json:"_tx_hashes"`
}

func (c *Client) AddressInfo(ctx context.Context, addresses []string) ([]byte, error) {
	return c.post(ctx, c.Cfg.AddressInfoPath, addressesRequest{Addresses: nonNil(addresses)})
}

func (c *Client) AddressUTXO(ctx context.Context, addresses []string) ([]byte, error) {
	return c.post(ctx, c.Cfg.AddressUTXOPath, addressesRequest{Addresses: nonNil(addresses)})
}

// TxInfo looks up transactions by hash. Koios answers with an empty array for
// hashes it has not seen.
func (c *Client) TxInfo(ctx context.Context, hashes []string) ([]byte, error) {
	return c.post(ctx, c.Cfg.TxInfoPath, txHashesRequest{TxHashes: nonNil(hashes)})
}

// Tip is used by readiness probes.
func (c *Client) Tip(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, providers.Join(c.Cfg.BaseURL, "tip"), nil)
	if err != nil {
		return errors.WithStack(err)
	}
	c.setHeaders(req)
	_, err = transport.Do(c.HTTP, req, provider, nil, c.Logger)
	return err
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, providers.Join(c.Cfg.BaseURL, path), bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	return transport.Do(c.HTTP, req, provider, body, c.Logger)
}

func (c *Client) setHeaders(req *http.Request) {
	for k, v := range c.Cfg.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept", "application/json")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
