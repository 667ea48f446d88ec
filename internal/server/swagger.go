package server

//go:generate swag init -g internal/server/server.go -o docs/swagger

// @title Hairloom Storefront Plugin API
// @version 0.1
// @description Read-only proxy over the Hairloom Shopify storefront for the ChatGPT plugin.
// @BasePath /
