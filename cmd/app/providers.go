package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/api"
	"github.com/shuliakovsky/cardano-gateway/pkg/artifact"
	"github.com/shuliakovsky/cardano-gateway/pkg/health"
	"github.com/shuliakovsky/cardano-gateway/pkg/koios"
	"github.com/shuliakovsky/cardano-gateway/pkg/providers"
	"github.com/shuliakovsky/cardano-gateway/pkg/submit"
)

func initProviders(cfg config, logger *zap.Logger) providers.Config {
	prov, err := providers.Load(cfg.ProvidersFile, logger)
	if err != nil {
		logger.Fatal("providers_load_error", zap.Error(err))
	}

	logger.Info("providers_loaded",
		zap.String("koios_base", prov.Koios.BaseURL),
		zap.Bool("blockfrost_key_set", prov.Blockfrost.ProjectID != ""),
	)
	if prov.Hydra.URL != "" {
		logger.Info("hydra_configured", zap.String("hydra_rpc_url", prov.Hydra.URL))
	}
	return prov
}

func initGateway(cfg config, prov providers.Config, logger *zap.Logger) (*api.Gateway, *health.Checker) {
	kc := koios.New(prov.Koios, cfg.Socks5, logger)
	submitter := submit.New(prov.Blockfrost, cfg.Socks5, logger)
	logger.Info("submit_mode_selected", zap.String("mode", submitter.Mode()))

	script := artifact.NewReader(cfg.ScriptHexPath, logger)
	if _, ok := script.Read(); !ok {
		logger.Warn("script_artifact_missing", zap.String("path", script.Path))
	}

	probes := []health.Probe{{Name: "koios", Required: true, Check: kc.Tip}}
	if bf, ok := submitter.(*submit.Blockfrost); ok {
		probes = append(probes, health.Probe{Name: "blockfrost", Required: true, Check: bf.Health})
	}
	if prov.Hydra.URL != "" {
		probes = append(probes, health.Probe{Name: "hydra", Check: health.HydraProbe(prov.Hydra.URL)})
	}
	checker := health.New(5*time.Second, logger, probes...)

	return api.NewGateway(kc, submitter, script, logger), checker
}
