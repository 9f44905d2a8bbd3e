package submit

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/providers"
)

const (
	ModeBlockfrost = "blockfrost"
	ModeMock       = "mock"
)

// Result is what the caller gets back after a submission.
type Result struct {
	TxID    string `json:"txid"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message,omitempty"`
}

// Submitter forwards a signed transaction (hex or base64 text).
type Submitter interface {
	Submit(ctx context.Context, signedTx string) (Result, error)
	Mode() string
}

// New picks the Blockfrost submitter when a project id is configured and the
// mock one otherwise.
func New(cfg providers.Blockfrost, socks5 string, logger *zap.Logger) Submitter {
	if cfg.ProjectID != "" {
		return NewBlockfrost(cfg, socks5, logger)
	}
	return NewMock()
}

// Mock never touches the network.
type Mock struct {
	Now func() time.Time
}

func NewMock() *Mock { return &Mock{Now: time.Now} }

func (m *Mock) Mode() string { return ModeMock }

func (m *Mock) Submit(_ context.Context, _ string) (Result, error) {
	return Result{
		TxID:    "mocked_txid_" + strconv.FormatInt(m.Now().UnixMilli(), 10),
		Message: "mock-submitted",
	}, nil
}
