package artifact

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

const DefaultPath = "aiken/build/contract.plutus.hex"

// Reader loads the compiled Aiken script hex. The file is read on every call.
type Reader struct {
	Path   string
	Logger *zap.Logger
}

func NewReader(path string, logger *zap.Logger) *Reader {
	if path == "" {
		path = DefaultPath
	}
	return &Reader{Path: path, Logger: logger}
}

// Read returns the trimmed script hex, or false when the file is missing or unreadable.
func (r *Reader) Read() (string, bool) {
	b, err := os.ReadFile(r.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.Logger.Error("script_artifact_read_error", zap.String("path", r.Path), zap.Error(err))
		}
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}
