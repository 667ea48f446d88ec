package server

import "github.com/hairloompk/hairloom-chatgpt-plugin/internal/logging"

type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// AllowedOrigin is the single origin permitted to make cross-origin
	// requests. Empty disables the Access-Control headers entirely.
	AllowedOrigin string

	// StaticDir holds the plugin discovery files (ai-plugin.json and
	// openapi.yaml).
	StaticDir string

	// Logger is optional; a stdout logger is installed when nil.
	Logger logging.Logger
}
