// Command hairloom starts the Hairloom storefront proxy: a thin read-only
// HTTP surface over the shop's Storefront GraphQL API, plus the static
// discovery files that register it as a ChatGPT plugin.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/swaggo/swag"

	"github.com/hairloompk/hairloom-chatgpt-plugin/internal/config"
	"github.com/hairloompk/hairloom-chatgpt-plugin/internal/logging"
	"github.com/hairloompk/hairloom-chatgpt-plugin/internal/server"
	"github.com/hairloompk/hairloom-chatgpt-plugin/internal/storefront"
)

func main() {
	cfg := config.Load()
	logger := logging.NewStdoutLogger("hairloom")

	if cfg.Shopify.Domain == "" || cfg.Shopify.StorefrontToken == "" {
		// Startup proceeds so the discovery files stay servable; data
		// endpoints will answer 500 until the environment is fixed.
		logger.Warn("SHOPIFY_SHOP_DOMAIN or SHOPIFY_STOREFRONT_TOKEN unset; data endpoints will fail")
	}

	shop := storefront.NewClient(cfg.Shopify.Domain, cfg.Shopify.StorefrontToken, logger, nil)
	srv := server.NewServer(server.Config{
		ListenAddr:    cfg.Server.Addr,
		AllowedOrigin: cfg.Server.PluginOrigin,
		StaticDir:     cfg.Server.StaticDir,
		Logger:        logger,
	}, shop)

	httpSrv := srv.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", logging.Field{Key: "addr", Value: cfg.Server.Addr})
		errCh <- httpSrv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("server stopped", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	case sig := <-stop:
		logger.Info("shutting down", logging.Field{Key: "signal", Value: sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Warn("shutdown", logging.Field{Key: "error", Value: err.Error()})
	}
}
