package health

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// HydraProbe dials the Hydra head websocket and closes it without reading.
func HydraProbe(url string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		if err != nil {
			if resp != nil {
				return errors.Wrapf(err, "hydra handshake status %d", resp.StatusCode)
			}
			return errors.Wrap(err, "hydra dial")
		}
		deadline, ok := ctx.Deadline()
		if !ok {
			deadline = time.Now().Add(time.Second)
		}
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		return conn.Close()
	}
}
