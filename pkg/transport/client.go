package transport

import (
	"context"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/proxy"
)

// NewClient returns an HTTP client for provider calls. When socks5 is set,
// connections are dialed through that proxy.
func NewClient(timeout time.Duration, socks5 string, logger *zap.Logger) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		IdleConnTimeout:     60 * time.Second,
		TLSHandshakeTimeout: 8 * time.Second,
	}
	if socks5 != "" {
		dialer, err := proxy.SOCKS5("tcp", socks5, nil, proxy.Direct)
		if err == nil {
			tr.Proxy = nil
			tr.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				if cd, ok := dialer.(proxy.ContextDialer); ok {
					return cd.DialContext(ctx, network, addr)
				}
				return dialer.Dial(network, addr)
			}
		} else {
			logger.Warn("socks5_dialer_error", zap.String("addr", socks5), zap.Error(err))
		}
	}
	return &http.Client{Transport: tr, Timeout: timeout}
}
