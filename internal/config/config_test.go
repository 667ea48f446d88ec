package config_test

import (
	"testing"

	"github.com/hairloompk/hairloom-chatgpt-plugin/internal/config"
)

// t.Setenv forbids t.Parallel, so these tests run sequentially.

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SHOPIFY_SHOP_DOMAIN", "SHOPIFY_STOREFRONT_TOKEN", "PORT", "PLUGIN_ORIGIN", "STATIC_DIR"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()

	if cfg.Server.Port != config.DefaultPort {
		t.Errorf("expected default port %d, got %d", config.DefaultPort, cfg.Server.Port)
	}
	if cfg.Server.Addr != ":3333" {
		t.Errorf("expected addr :3333, got %q", cfg.Server.Addr)
	}
	if cfg.Server.PluginOrigin != config.DefaultPluginOrigin {
		t.Errorf("expected default plugin origin, got %q", cfg.Server.PluginOrigin)
	}
	if cfg.Shopify.Domain != "" || cfg.Shopify.StorefrontToken != "" {
		t.Errorf("expected empty shopify config, got %+v", cfg.Shopify)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHOPIFY_SHOP_DOMAIN", "hairloom-pk.myshopify.com")
	t.Setenv("SHOPIFY_STOREFRONT_TOKEN", "shpat-test")
	t.Setenv("PORT", "8080")
	t.Setenv("PLUGIN_ORIGIN", "https://chat.example.com")

	cfg := config.Load()

	if cfg.Shopify.Domain != "hairloom-pk.myshopify.com" {
		t.Errorf("expected domain from env, got %q", cfg.Shopify.Domain)
	}
	if cfg.Shopify.StorefrontToken != "shpat-test" {
		t.Errorf("expected token from env, got %q", cfg.Shopify.StorefrontToken)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Server.PluginOrigin != "https://chat.example.com" {
		t.Errorf("expected origin override, got %q", cfg.Server.PluginOrigin)
	}
}

func TestLoad_InvalidPortIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")

	cfg := config.Load()

	if cfg.Server.Port != config.DefaultPort {
		t.Errorf("expected default port kept, got %d", cfg.Server.Port)
	}
}
