package docs

import (
	"embed"
	"net/http"
	"strings"
	"sync"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerFS embed.FS

const InstanceName = "swagger"

var registerOnce sync.Once

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Cardano Gateway API",
	Description:      "Koios lookups, mock unsigned payloads and Blockfrost submission",
	InfoInstanceName: InstanceName,
}

// Register publishes the embedded document for http-swagger under host.
func Register(host string) error {
	data, err := swaggerFS.ReadFile("swagger.json")
	if err != nil {
		return err
	}
	SwaggerInfo.Host = host
	SwaggerInfo.SwaggerTemplate = string(data)
	registerOnce.Do(func() { swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo) })
	return nil
}

func JSONHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc(InstanceName)
	if err != nil {
		http.Error(w, "swagger spec not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}

// ResolveHost returns the host shown in the document: the explicit one when
// given, otherwise host:port with default web ports omitted.
func ResolveHost(explicit, host, port string) string {
	if explicit != "" {
		if strings.Contains(explicit, ":") || port == "80" || port == "443" {
			return explicit
		}
		return explicit + ":" + port
	}
	if port != "80" && port != "443" {
		return host + ":" + port
	}
	return host
}
