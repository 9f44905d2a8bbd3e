package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRead_TrimsContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.plutus.hex")
	require.NoError(t, os.WriteFile(path, []byte("  4e4d01000033222220051\n"), 0644))

	r := NewReader(path, zap.NewNop())
	hex, ok := r.Read()
	require.True(t, ok)
	require.Equal(t, "4e4d01000033222220051", hex)
}

func TestRead_MissingFileIsAbsent(t *testing.T) {
	r := NewReader(filepath.Join(t.TempDir(), "nope.hex"), zap.NewNop())
	hex, ok := r.Read()
	require.False(t, ok)
	require.Empty(t, hex)
}

func TestRead_DirectoryIsAbsent(t *testing.T) {
	r := NewReader(t.TempDir(), zap.NewNop())
	_, ok := r.Read()
	require.False(t, ok)
}

func TestRead_NoCaching(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.plutus.hex")
	require.NoError(t, os.WriteFile(path, []byte("aa"), 0644))
	r := NewReader(path, zap.NewNop())

	first, _ := r.Read()
	require.NoError(t, os.WriteFile(path, []byte("bb"), 0644))
	second, _ := r.Read()

	require.Equal(t, "aa", first)
	require.Equal(t, "bb", second)
}

func TestNewReader_DefaultPath(t *testing.T) {
	require.Equal(t, DefaultPath, NewReader("", zap.NewNop()).Path)
}
