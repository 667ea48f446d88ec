package storefront

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefaultSearchLimit applies when the caller does not specify one.
const DefaultSearchLimit = 5

// productURL returns the canonical product page when the upstream does not
// supply onlineStoreUrl (e.g. on development shops).
func (c *Client) productURL(handle string) string {
	return fmt.Sprintf("%s/products/%s", c.baseURL(), handle)
}

// articleURL is the canonical-URL fallback for blog articles.
func (c *Client) articleURL(handle string) string {
	return fmt.Sprintf("%s/blogs/news/%s", c.baseURL(), handle)
}

// Search runs one combined products+articles query. limit caps each upstream
// collection independently, then the concatenated product-then-article list
// is truncated to limit. Articles can therefore be pushed out entirely by a
// full page of products; this matches the shipped behavior and keeps
// products ranked first.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	data, err := c.Execute(ctx, searchQuery, map[string]any{
		"query": query,
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Products struct {
			Edges []struct {
				Node productNode `json:"node"`
			} `json:"edges"`
		} `json:"products"`
		Articles struct {
			Edges []struct {
				Node articleNode `json:"node"`
			} `json:"edges"`
		} `json:"articles"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, &UpstreamError{Detail: "decode search payload: " + err.Error()}
	}

	results := make([]SearchResult, 0, len(decoded.Products.Edges)+len(decoded.Articles.Edges))

	for _, edge := range decoded.Products.Edges {
		p := edge.Node
		r := SearchResult{
			ID:      p.ID,
			Title:   p.Title,
			URL:     p.OnlineStoreURL,
			Snippet: truncate(p.Description, snippetMax),
			Score:   productScore,
			Price:   p.PriceRange.MinVariantPrice.Amount,
		}
		if r.URL == "" {
			r.URL = c.productURL(p.Handle)
		}
		if len(p.Images.Edges) > 0 {
			r.Image = p.Images.Edges[0].Node.URL
		}
		results = append(results, r)
	}

	for _, edge := range decoded.Articles.Edges {
		a := edge.Node
		snippet := a.Excerpt
		if snippet == "" {
			snippet = htmlToText(a.ContentHTML)
		}
		r := SearchResult{
			ID:      a.ID,
			Title:   a.Title,
			URL:     a.OnlineStoreURL,
			Snippet: truncate(snippet, snippetMax),
			Score:   articleScore,
		}
		if r.URL == "" {
			r.URL = c.articleURL(a.Handle)
		}
		results = append(results, r)
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ProductByHandle looks up a single product and flattens its image edges and
// price range.
func (c *Client) ProductByHandle(ctx context.Context, handle string) (*ProductDetail, error) {
	data, err := c.Execute(ctx, productByHandleQuery, map[string]any{"handle": handle})
	if err != nil {
		return nil, err
	}

	var decoded struct {
		ProductByHandle *productNode `json:"productByHandle"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, &UpstreamError{Detail: "decode product payload: " + err.Error()}
	}
	if decoded.ProductByHandle == nil {
		return nil, &NotFoundError{Detail: "Product not found by handle"}
	}

	p := decoded.ProductByHandle
	detail := &ProductDetail{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		URL:         p.OnlineStoreURL,
		Price:       p.PriceRange.MinVariantPrice.Amount,
		Images:      make([]string, 0, len(p.Images.Edges)),
	}
	if detail.URL == "" {
		detail.URL = c.productURL(p.Handle)
	}
	for _, edge := range p.Images.Edges {
		detail.Images = append(detail.Images, edge.Node.URL)
	}
	return detail, nil
}

// ArticleByHandle looks up one blog article via a handle-scoped query.
func (c *Client) ArticleByHandle(ctx context.Context, handle string) (*ArticleDetail, error) {
	data, err := c.Execute(ctx, articleByHandleQuery, map[string]any{
		"query": "handle:" + handle,
	})
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Articles struct {
			Edges []struct {
				Node articleNode `json:"node"`
			} `json:"edges"`
		} `json:"articles"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, &UpstreamError{Detail: "decode article payload: " + err.Error()}
	}
	if len(decoded.Articles.Edges) == 0 {
		return nil, &NotFoundError{Detail: "Article not found by handle"}
	}

	a := decoded.Articles.Edges[0].Node
	detail := &ArticleDetail{
		Title:   a.Title,
		URL:     a.OnlineStoreURL,
		Excerpt: a.Excerpt,
		Content: a.Content,
	}
	if detail.URL == "" {
		detail.URL = c.articleURL(a.Handle)
	}
	return detail, nil
}

// FAQ fetches up to 10 pages titled FAQ and maps each to a question/answer
// pair, title and body verbatim. Zero matches yields an empty slice, not an
// error.
func (c *Client) FAQ(ctx context.Context) ([]FAQEntry, error) {
	data, err := c.Execute(ctx, faqPagesQuery, nil)
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Pages struct {
			Edges []struct {
				Node pageNode `json:"node"`
			} `json:"edges"`
		} `json:"pages"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, &UpstreamError{Detail: "decode pages payload: " + err.Error()}
	}

	faqs := make([]FAQEntry, 0, len(decoded.Pages.Edges))
	for _, edge := range decoded.Pages.Edges {
		faqs = append(faqs, FAQEntry{
			Question: edge.Node.Title,
			Answer:   edge.Node.Body,
		})
	}
	return faqs, nil
}
