package secrets

import (
	"net/http"
	"os"
	"strings"
	"sync"
)

const mask = "***"

var (
	loadEnv    sync.Once
	envSecrets []string

	credentialHeaders = map[string]bool{
		"Project_id":    true,
		"X-Api-Key":     true,
		"Authorization": true,
		"Api-Key":       true,
	}

	secretEnvMarkers = []string{"_KEY", "TOKEN", "SECRET", "PASSWORD"}
)

func collectEnvSecrets() {
	for _, kv := range os.Environ() {
		name, val, ok := strings.Cut(kv, "=")
		if !ok || val == "" {
			continue
		}
		name = strings.ToUpper(name)
		for _, m := range secretEnvMarkers {
			if strings.Contains(name, m) {
				envSecrets = append(envSecrets, val)
				break
			}
		}
	}
}

// Headers flattens h for logging with provider credentials such as the
// Blockfrost project_id masked.
func Headers(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k := range h {
		if credentialHeaders[http.CanonicalHeaderKey(k)] {
			out[k] = mask
			continue
		}
		out[k] = h.Get(k)
	}
	return out
}

// RedactString replaces values of sensitive environment variables found in s.
func RedactString(s string) string {
	loadEnv.Do(collectEnvSecrets)
	for _, val := range envSecrets {
		s = strings.ReplaceAll(s, val, "[HIDDEN]")
	}
	return s
}
