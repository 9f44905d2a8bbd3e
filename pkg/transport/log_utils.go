package transport

import (
	"time"

	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/secrets"
)

const LogBodyLimit = 4096

func LogSafe(b []byte) []byte {
	if len(b) > LogBodyLimit {
		out := make([]byte, 0, LogBodyLimit+16)
		out = append(out, b[:LogBodyLimit]...)
		return append(out, "... [truncated]"...)
	}
	return b
}

func LogRequest(logger *zap.Logger, tag string, method, path string, body []byte) time.Time {
	logger.Debug(tag+"_request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("body", secrets.RedactString(string(LogSafe(body)))),
	)
	return time.Now()
}

func LogResponse(logger *zap.Logger, tag string, status int, body []byte, started time.Time) {
	logger.Info(tag+"_response",
		zap.Int("status", status),
		zap.Int64("latency_ms", time.Since(started).Milliseconds()),
		zap.String("body", secrets.RedactString(string(LogSafe(body)))),
	)
}
