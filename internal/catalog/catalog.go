// Package catalog is the read-side client for the product API, with a
// tag-invalidated TTL cache in front of every listing call.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/cartwheel-labs/storefront-core/pkg/errors"
	"github.com/cartwheel-labs/storefront-core/pkg/logger"
)

// Rating is the aggregate review score a product ships with.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a catalog listing.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Cache tags. Product mutations invalidate TagProducts; category edits
// invalidate TagCategories.
const (
	TagProducts   = "products"
	TagCategories = "categories"
)

// ProductTag returns the invalidation tag for a single product.
func ProductTag(id int) string {
	return fmt.Sprintf("product:%d", id)
}

// Options configures the catalog client.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
	Logger   *logger.Logger

	// HTTPClient overrides the default client, for tests.
	HTTPClient *http.Client
}

// Client fetches catalog data, serving repeat reads from cache until
// the TTL lapses or a tag is invalidated.
type Client struct {
	http    *http.Client
	baseURL string
	cache   *tagCache
	logg    *logger.Logger
}

// NewClient builds a catalog client. BaseURL is required.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("catalog: base URL is required")
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Client{
		http:    hc,
		baseURL: opts.BaseURL,
		cache:   newTagCache(ttl),
		logg:    opts.Logger,
	}, nil
}

// ListProducts fetches products, newest id last. A limit of zero or
// less fetches everything.
func (c *Client) ListProducts(ctx context.Context, limit int) ([]Product, error) {
	key := fmt.Sprintf("products?limit=%d", limit)
	if hit, ok := c.cache.get(key); ok {
		return hit.([]Product), nil
	}

	path := "/products"
	if limit > 0 {
		path = fmt.Sprintf("/products?limit=%d", limit)
	}
	var list []Product
	if err := c.getJSON(ctx, path, &list); err != nil {
		return nil, err
	}
	c.cache.set(key, list, TagProducts)
	return list, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (*Product, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id must be positive")
	}
	key := fmt.Sprintf("product:%d", id)
	if hit, ok := c.cache.get(key); ok {
		p := hit.(Product)
		return &p, nil
	}

	var p Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &p); err != nil {
		return nil, err
	}
	if p.ID == 0 {
		// The API answers unknown ids with an empty body.
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	c.cache.set(key, p, TagProducts, ProductTag(id))
	return &p, nil
}

// ListCategories fetches the category names.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	const key = "categories"
	if hit, ok := c.cache.get(key); ok {
		return hit.([]string), nil
	}

	var list []string
	if err := c.getJSON(ctx, "/products/categories", &list); err != nil {
		return nil, err
	}
	c.cache.set(key, list, TagCategories)
	return list, nil
}

// ListByCategory fetches the products in one category. Unknown
// categories come back as an empty list, not an error.
func (c *Client) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	if category == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	key := "category:" + category
	if hit, ok := c.cache.get(key); ok {
		return hit.([]Product), nil
	}

	var list []Product
	if err := c.getJSON(ctx, "/products/category/"+url.PathEscape(category), &list); err != nil {
		return nil, err
	}
	c.cache.set(key, list, TagProducts, TagCategories)
	return list, nil
}

// Invalidate drops every cached entry carrying any of the given tags.
func (c *Client) Invalidate(tags ...string) {
	c.cache.invalidate(tags...)
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog request failed")
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	case res.StatusCode >= 400:
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("catalog API returned %d", res.StatusCode))
	}

	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}
	return nil
}
