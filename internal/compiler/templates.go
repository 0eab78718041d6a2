package compiler

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"text/template"
)

// templatesFS embeds the node bridge script so the binary carries it.
//
//go:embed templates/*.tmpl
var templatesFS embed.FS

// loadTemplate loads and parses a template from the embedded filesystem.
func loadTemplate(name string) (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/"+name)
}

// bridgeConfig is the data rendered into the bridge script.
type bridgeConfig struct {
	// Module is the JSON-quoted require() id of the handlebars package.
	Module string
}

// renderBridge returns the node script that serves parse and precompile
// requests for the given handlebars module id.
func renderBridge(module string) (string, error) {
	tmpl, err := loadTemplate("bridge.js.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to load template: %w", err)
	}

	quoted, err := json.Marshal(module)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, bridgeConfig{Module: string(quoted)}); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
