package storefront

// Scores are fixed per source type rather than computed: the plugin consumer
// only needs products ranked ahead of articles.
const (
	productScore = 1.0
	articleScore = 0.8
)

// snippetMax caps SearchResult snippets.
const snippetMax = 300

// SearchResult is one flattened entry of a /search response.
type SearchResult struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
	Image   string  `json:"image,omitempty"`
	Price   string  `json:"price,omitempty"`
}

// ProductDetail is the flattened /product/{handle} response body.
type ProductDetail struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Price       string   `json:"price"`
	Images      []string `json:"images"`
}

// ArticleDetail is the flattened /blog/{slug} response body.
type ArticleDetail struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// FAQEntry pairs a page title with its body verbatim.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ─── upstream decode shapes (edge/node wrappers) ───────────────────────

type imageNode struct {
	URL string `json:"url"`
}

type priceNode struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type productNode struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Handle         string `json:"handle"`
	Description    string `json:"description"`
	OnlineStoreURL string `json:"onlineStoreUrl"`
	Images         struct {
		Edges []struct {
			Node imageNode `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	PriceRange struct {
		MinVariantPrice priceNode `json:"minVariantPrice"`
	} `json:"priceRange"`
}

type articleNode struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Handle         string `json:"handle"`
	Excerpt        string `json:"excerpt"`
	ContentHTML    string `json:"contentHtml"`
	Content        string `json:"content"`
	OnlineStoreURL string `json:"onlineStoreUrl"`
}

type pageNode struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
