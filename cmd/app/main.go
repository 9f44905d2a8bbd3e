package main

func main() {
	PrintVersion()

	cfg := loadConfig()
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	prov := initProviders(cfg, logger)
	gw, checker := initGateway(cfg, prov, logger)

	handler := registerRoutes(gw, checker, cfg, logger)

	startServer(cfg.Host, cfg.Port, handler, logger)
}
