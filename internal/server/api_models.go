package server

import "github.com/hairloompk/hairloom-chatgpt-plugin/internal/storefront"

// SearchResponse echoes the query alongside its flattened results.
type SearchResponse struct {
	Query   string                    `json:"query"`
	Results []storefront.SearchResult `json:"results"`
}

// FAQResponse wraps the question/answer pairs derived from FAQ pages.
type FAQResponse struct {
	FAQs []storefront.FAQEntry `json:"faqs"`
}

// ErrorResponse is the uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"Product not found by handle"`
}
