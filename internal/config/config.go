// Package config loads process configuration once at startup. The resulting
// Config is passed explicitly into components; nothing reads the environment
// after Load returns.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPort is used when no PORT override is present.
const DefaultPort = 3333

// DefaultPluginOrigin is the single origin allowed to make cross-origin
// requests against the API.
const DefaultPluginOrigin = "https://chat.openai.com"

// Config holds everything the proxy needs to run.
type Config struct {
	// Shopify holds the upstream storefront connection parameters. Both
	// fields are required; validation is deferred to the storefront client
	// so that missing values surface as 500s per request rather than
	// preventing startup (the discovery files must stay servable).
	Shopify struct {
		// Domain is the myshopify host, e.g. "hairloom-pk.myshopify.com".
		Domain string `yaml:"domain"`
		// StorefrontToken is the public Storefront API access token.
		StorefrontToken string `yaml:"storefront_token"`
	} `yaml:"shopify"`

	Server struct {
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // computed from Port after loading
		// PluginOrigin is the one origin allowed by CORS.
		PluginOrigin string `yaml:"plugin_origin"`
		// StaticDir holds ai-plugin.json and openapi.yaml.
		StaticDir string `yaml:"static_dir"`
	} `yaml:"server"`
}

// Load reads configuration from an optional .env file, an optional
// config.yaml, and the environment, in that order of increasing precedence.
func Load() *Config {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Server.Port = DefaultPort
	cfg.Server.PluginOrigin = DefaultPluginOrigin
	cfg.Server.StaticDir = "static"

	if data, err := os.ReadFile("config.yaml"); err == nil {
		// A malformed config.yaml is ignored rather than fatal; the
		// environment can still supply everything required.
		_ = yaml.Unmarshal(data, cfg)
	}

	if v := os.Getenv("SHOPIFY_SHOP_DOMAIN"); v != "" {
		cfg.Shopify.Domain = v
	}
	if v := os.Getenv("SHOPIFY_STOREFRONT_TOKEN"); v != "" {
		cfg.Shopify.StorefrontToken = v
	}
	if v := os.Getenv("PLUGIN_ORIGIN"); v != "" {
		cfg.Server.PluginOrigin = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			cfg.Server.Port = p
		}
	}

	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)
	return cfg
}
