package transport

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

func IsRateLimited(resp *http.Response, body []byte) bool {
	if resp == nil {
		return false
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	if strings.TrimSpace(resp.Header.Get("Retry-After")) != "" {
		return true
	}
	if strings.EqualFold(resp.Header.Get("X-RateLimit-Remaining"), "0") {
		return true
	}
	if len(body) > 0 && gjson.ValidBytes(body) {
		for _, path := range []string{"error.message", "message", "hint"} {
			if looksLikeRL(gjson.GetBytes(body, path).String()) {
				return true
			}
		}
	}
	return false
}

func looksLikeRL(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "rate limit") ||
		strings.Contains(s, "too many request") ||
		strings.Contains(s, "usage limit")
}
