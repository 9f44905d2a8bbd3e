package main

import (
	"os"

	"github.com/joho/godotenv"
)

type config struct {
	Host          string
	Port          string
	ProvidersFile string
	ScriptHexPath string
	Socks5        string
	SwaggerHost   string
	LogLevel      string
}

// loadConfig reads the environment once, after an optional .env file.
func loadConfig() config {
	_ = godotenv.Load()

	return config{
		Host:          getEnv("SERVER_HOST", "0.0.0.0"),
		Port:          getEnv("PORT", getEnv("SERVER_PORT", "3001")),
		ProvidersFile: getEnv("PROVIDERS_FILE", "configs/providers.yaml"),
		ScriptHexPath: getEnv("SCRIPT_HEX_PATH", "aiken/build/contract.plutus.hex"),
		Socks5:        getEnv("OUTBOUND_SOCKS5", ""),
		SwaggerHost:   getEnv("SWAGGER_HOST", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
