package providers

import (
	"io/fs"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var envRe = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`) // Searching for environment variables to substitute.

// Load reads the provider file at path, expanding ${VAR} placeholders from the
// environment. A missing file falls back to FromEnv.
func Load(path string, logger *zap.Logger) (Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("providers_file_missing_using_env", zap.String("file", path))
		return FromEnv(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(err, "read providers file")
	}

	b = envRe.ReplaceAllFunc(b, func(m []byte) []byte {
		k := string(envRe.FindSubmatch(m)[1])
		val := os.Getenv(k)
		if val == "" {
			logger.Debug("env variable is empty during config expansion",
				zap.String("file", path),
				zap.String("var", k))
		}
		return []byte(val)
	})

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

// FromEnv builds the provider config from KOIOS_BASE, BLOCKFROST_KEY,
// BLOCKFROST_BASE and HYDRA_RPC_URL.
func FromEnv() Config {
	cfg := Config{
		Koios:      Koios{BaseURL: os.Getenv("KOIOS_BASE")},
		Blockfrost: Blockfrost{BaseURL: os.Getenv("BLOCKFROST_BASE"), ProjectID: os.Getenv("BLOCKFROST_KEY")},
		Hydra:      Hydra{URL: os.Getenv("HYDRA_RPC_URL")},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Koios.BaseURL == "" {
		c.Koios.BaseURL = DefaultKoiosBase
	}
	if c.Koios.AddressInfoPath == "" {
		c.Koios.AddressInfoPath = "address_info"
	}
	if c.Koios.AddressUTXOPath == "" {
		c.Koios.AddressUTXOPath = "address_utxo"
	}
	if c.Koios.TxInfoPath == "" {
		c.Koios.TxInfoPath = "tx_info"
	}
	if c.Koios.TimeoutMs <= 0 {
		c.Koios.TimeoutMs = DefaultTimeoutMs
	}
	if c.Koios.Headers == nil {
		c.Koios.Headers = map[string]string{}
	}
	if c.Blockfrost.BaseURL == "" {
		c.Blockfrost.BaseURL = DefaultBlockfrostBase
	}
	if c.Blockfrost.SubmitPath == "" {
		c.Blockfrost.SubmitPath = "tx/submit"
	}
	if c.Blockfrost.TimeoutMs <= 0 {
		c.Blockfrost.TimeoutMs = DefaultTimeoutMs
	}
	c.Blockfrost.ProjectID = strings.TrimSpace(c.Blockfrost.ProjectID)
}

func (c Config) Validate() error {
	for name, raw := range map[string]string{
		"koios.baseUrl":      c.Koios.BaseURL,
		"blockfrost.baseUrl": c.Blockfrost.BaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.Errorf("invalid %s %q", name, raw)
		}
	}
	return nil
}

// Join appends path to base with exactly one slash between them.
func Join(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
