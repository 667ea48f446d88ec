package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/hairloompk/hairloom-chatgpt-plugin/internal/logging"
	"github.com/hairloompk/hairloom-chatgpt-plugin/internal/storefront"
)

// Server is the HTTP surface of the storefront proxy. Every data endpoint is
// a stateless translation: one inbound request, one upstream GraphQL call,
// one reshaped JSON response.
type Server struct {
	cfg    Config
	shop   *storefront.Client
	router chi.Router
	logger logging.Logger
}

// NewServer wires the router around an already-constructed storefront
// client.
func NewServer(cfg Config, shop *storefront.Client) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}

	s := &Server{
		cfg:    cfg,
		shop:   shop,
		router: chi.NewRouter(),
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.requestIDMiddleware)
	r.Use(s.corsMiddleware)

	// Plugin discovery
	r.Get("/.well-known/ai-plugin.json", s.handleAIPluginManifest)
	r.Get("/openapi.yaml", s.handleOpenAPISpec)
	r.Get("/legal", s.handleLegal)
	r.Get("/healthz", s.handleHealthz)

	// Interactive docs, backed by the same static spec the plugin uses
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/openapi.yaml")))

	// Storefront data
	r.Get("/search", s.handleSearch)
	r.Get("/product/{handle}", s.handleProduct)
	r.Get("/blog/{slug}", s.handleBlog)
	r.Get("/faq", s.handleFAQ)
}

// corsMiddleware allows cross-origin GETs from exactly one origin, the
// ChatGPT plugin host. All endpoints are read-only so no preflight beyond
// GET is advertised.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AllowedOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", s.cfg.AllowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware tags each request with a UUID so log lines from one
// exchange can be correlated.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}
	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}
	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// ─── JSON helpers ──────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeStorefrontError maps the storefront error taxonomy onto HTTP status
// codes: ConfigError → 500, NotFoundError → 404, UpstreamError → 502.
// Anything else is an internal error.
func (s *Server) writeStorefrontError(w http.ResponseWriter, err error) {
	var (
		cfgErr      *storefront.ConfigError
		notFound    *storefront.NotFoundError
		upstreamErr *storefront.UpstreamError
	)
	switch {
	case errors.As(err, &cfgErr):
		s.logger.Error("configuration missing", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, notFound.Detail)
	case errors.As(err, &upstreamErr):
		s.logger.Warn("upstream failure", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("unexpected handler error", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// ─── Discovery and service endpoints ───────────────────────────────────

func (s *Server) handleAIPluginManifest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, filepath.Join(s.cfg.StaticDir, "ai-plugin.json"))
}

func (s *Server) handleOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/yaml")
	http.ServeFile(w, r, filepath.Join(s.cfg.StaticDir, "openapi.yaml"))
}

func (s *Server) handleLegal(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hairloom storefront plugin. Product, article and FAQ data is served as-is from the Hairloom shop.\n"))
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─── Storefront handlers ───────────────────────────────────────────────

// handleSearch godoc
// @Summary Search products and blog articles
// @Produce json
// @Param q query string true "Free-text search query"
// @Param limit query int false "Maximum number of results" default(5)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /search [get]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing q query parameter")
		return
	}

	limit := storefront.DefaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	results, err := s.shop.Search(r.Context(), query, limit)
	if err != nil {
		s.writeStorefrontError(w, err)
		return
	}
	s.logger.Info("search served",
		logging.Field{Key: "q", Value: query},
		logging.Field{Key: "count", Value: len(results)})
	writeJSON(w, http.StatusOK, SearchResponse{Query: query, Results: results})
}

// handleProduct godoc
// @Summary Fetch one product by handle
// @Produce json
// @Param handle path string true "Product handle (slug)"
// @Success 200 {object} storefront.ProductDetail
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /product/{handle} [get]
func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	product, err := s.shop.ProductByHandle(r.Context(), handle)
	if err != nil {
		s.writeStorefrontError(w, err)
		return
	}
	s.logger.Info("product served", logging.Field{Key: "handle", Value: handle})
	writeJSON(w, http.StatusOK, product)
}

// handleBlog godoc
// @Summary Fetch one blog article by slug
// @Produce json
// @Param slug path string true "Article handle (slug)"
// @Success 200 {object} storefront.ArticleDetail
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /blog/{slug} [get]
func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := s.shop.ArticleByHandle(r.Context(), slug)
	if err != nil {
		s.writeStorefrontError(w, err)
		return
	}
	s.logger.Info("article served", logging.Field{Key: "slug", Value: slug})
	writeJSON(w, http.StatusOK, article)
}

// handleFAQ godoc
// @Summary List FAQ entries
// @Produce json
// @Success 200 {object} FAQResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /faq [get]
func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	faqs, err := s.shop.FAQ(r.Context())
	if err != nil {
		s.writeStorefrontError(w, err)
		return
	}
	s.logger.Info("faq served", logging.Field{Key: "count", Value: len(faqs)})
	writeJSON(w, http.StatusOK, FAQResponse{FAQs: faqs})
}
