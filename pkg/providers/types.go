package providers

const (
	DefaultKoiosBase      = "https://api.koios.rest/api/v0"
	DefaultBlockfrostBase = "https://cardano-mainnet.blockfrost.io/api/v0"
	DefaultTimeoutMs      = 20000
)

type Koios struct {
	BaseURL         string            `yaml:"baseUrl" json:"baseUrl"`
	AddressInfoPath string            `yaml:"addressInfoPath" json:"addressInfoPath"`
	AddressUTXOPath string            `yaml:"addressUtxoPath" json:"addressUtxoPath"`
	TxInfoPath      string            `yaml:"txInfoPath" json:"txInfoPath"`
	TimeoutMs       int               `yaml:"timeoutMs" json:"timeoutMs"`
	Headers         map[string]string `yaml:"headers" json:"headers"`
}

type Blockfrost struct {
	BaseURL    string `yaml:"baseUrl" json:"baseUrl"`
	ProjectID  string `yaml:"projectId" json:"-"`
	SubmitPath string `yaml:"submitPath" json:"submitPath"`
	TimeoutMs  int    `yaml:"timeoutMs" json:"timeoutMs"`
}

// Hydra is an auxiliary head endpoint. It is only probed, never called.
type Hydra struct {
	URL string `yaml:"url" json:"url"`
}

type Config struct {
	Koios      Koios      `yaml:"koios" json:"koios"`
	Blockfrost Blockfrost `yaml:"blockfrost" json:"blockfrost"`
	Hydra      Hydra      `yaml:"hydra" json:"hydra"`
}
