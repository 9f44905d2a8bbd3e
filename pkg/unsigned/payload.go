// Package unsigned builds the mock unsigned transaction payload: a JSON record
// carried as hex. It is not a Cardano transaction and has no inputs, fee or
// witnesses.
package unsigned

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrBadHex  = errors.New("invalid hex")
	ErrBadJSON = errors.New("invalid json")
)

type Payload struct {
	To     string          `json:"to"`
	Amount json.Number     `json:"amount"`
	Meta   json.RawMessage `json:"meta"`
	TS     int64           `json:"ts"`
}

// New stamps the payload with the current time. Missing metadata is stored as null.
func New(to string, amount json.Number, meta json.RawMessage, now time.Time) Payload {
	if len(bytes.TrimSpace(meta)) == 0 {
		meta = json.RawMessage("null")
	}
	return Payload{To: to, Amount: amount, Meta: meta, TS: now.UnixMilli()}
}

func Encode(p Payload) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", errors.Wrap(err, "encode payload")
	}
	return hex.EncodeToString(b), nil
}

// Decode reverses Encode into a generic JSON value. Numbers keep their literal form.
func Decode(s string) (any, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrBadHex, err.Error())
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(ErrBadJSON, err.Error())
	}
	if dec.More() {
		return nil, errors.Wrap(ErrBadJSON, "trailing data after JSON value")
	}
	return v, nil
}
