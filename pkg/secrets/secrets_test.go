package secrets

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaders_MasksProjectID(t *testing.T) {
	h := http.Header{}
	h.Set("project_id", "mainnetXYZ")
	h.Set("Content-Type", "application/cbor")

	out := Headers(h)
	require.Equal(t, "***", out["Project_id"])
	require.Equal(t, "application/cbor", out["Content-Type"])
}

func TestHeaders_Empty(t *testing.T) {
	require.Nil(t, Headers(nil))
}

func TestRedactString_HidesKeyedEnvValues(t *testing.T) {
	loadEnv = sync.Once{}
	envSecrets = nil
	t.Setenv("BLOCKFROST_KEY", "mainnetSecretValue")

	got := RedactString(`{"project_id":"mainnetSecretValue"}`)
	require.Equal(t, `{"project_id":"[HIDDEN]"}`, got)
}
