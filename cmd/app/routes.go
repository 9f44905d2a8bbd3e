package main

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/api"
	"github.com/shuliakovsky/cardano-gateway/pkg/docs"
	"github.com/shuliakovsky/cardano-gateway/pkg/health"
	"github.com/shuliakovsky/cardano-gateway/pkg/metrics"
)

func registerRoutes(gw *api.Gateway, checker *health.Checker, cfg config, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Gateway operations
	gw.Register(mux)

	// Readiness
	mux.Handle("GET /readyz", api.Ready(checker))

	// Swagger
	if err := docs.Register(docs.ResolveHost(cfg.SwaggerHost, cfg.Host, cfg.Port)); err != nil {
		logger.Warn("swagger_register_error", zap.Error(err))
	} else {
		mux.HandleFunc("GET /swagger/doc.json", docs.JSONHandler)
		mux.Handle("GET /swagger/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.InstanceName(docs.InstanceName),
		))
	}

	// Metrics
	metrics.Init()
	mux.Handle("GET /metrics", metrics.Handler())

	return withCORS(api.Wrap(mux, gw))
}
