// Package spoonacular implements the RecipeCatalog port against the
// spoonacular REST API. Responses are cached with a flat TTL and
// outbound requests run through a token-bucket rate limiter, keeping
// well under the free-tier quota.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driven"
	"github.com/plateful-labs/plateful-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RecipeCatalog = (*Client)(nil)

const (
	// defaultTimeout bounds every API request.
	defaultTimeout = 30 * time.Second

	// defaultLimit is the result count when a query does not set one.
	defaultLimit = 10

	// Conservative request budget; spoonacular's free tier is quota-based.
	requestsPerSecond = 2.0
	burstSize         = 5
)

// Client is a spoonacular API client.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   *responseCache
	limiter *rate.Limiter
}

// NewClient creates a catalog client. baseURL should omit the trailing
// slash; cacheTTL controls response caching (non-positive disables it).
func NewClient(baseURL, apiKey string, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
		cache:   newResponseCache(cacheTTL),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// searchResponse is the complexSearch envelope.
type searchResponse struct {
	Results []domain.RecipeSummary `json:"results"`
}

// randomResponse is the random-recipes envelope.
type randomResponse struct {
	Recipes []domain.Recipe `json:"recipes"`
}

// Search finds recipes matching the query.
func (c *Client) Search(ctx context.Context, query domain.RecipeQuery) ([]domain.RecipeSummary, error) {
	params := url.Values{}
	params.Set("query", query.Text)
	if query.Diet != "" {
		params.Set("diet", query.Diet)
	}
	if query.Cuisine != "" {
		params.Set("cuisine", query.Cuisine)
	}
	if query.MaxReadyTime > 0 {
		params.Set("maxReadyTime", strconv.Itoa(query.MaxReadyTime))
	}
	params.Set("number", strconv.Itoa(limitOrDefault(query.Limit)))

	var resp searchResponse
	if err := c.get(ctx, "/recipes/complexSearch", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetRecipe fetches the full snapshot for a recipe, including nutrition
// and ingredients.
func (c *Client) GetRecipe(ctx context.Context, id int) (*domain.Recipe, error) {
	params := url.Values{}
	params.Set("includeNutrition", "true")

	var recipe domain.Recipe
	if err := c.get(ctx, fmt.Sprintf("/recipes/%d/information", id), params, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Similar lists recipes similar to the given one.
func (c *Client) Similar(ctx context.Context, id int, limit int) ([]domain.RecipeSummary, error) {
	params := url.Values{}
	params.Set("number", strconv.Itoa(limitOrDefault(limit)))

	var similar []domain.RecipeSummary
	if err := c.get(ctx, fmt.Sprintf("/recipes/%d/similar", id), params, &similar); err != nil {
		return nil, err
	}
	return similar, nil
}

// Random returns random recipes.
func (c *Client) Random(ctx context.Context, limit int) ([]domain.RecipeSummary, error) {
	params := url.Values{}
	params.Set("number", strconv.Itoa(limitOrDefault(limit)))

	var resp randomResponse
	if err := c.get(ctx, "/recipes/random", params, &resp); err != nil {
		return nil, err
	}

	summaries := make([]domain.RecipeSummary, len(resp.Recipes))
	for i, r := range resp.Recipes {
		summaries[i] = domain.RecipeSummary{
			ID:             r.ID,
			Title:          r.Title,
			Image:          r.Image,
			ReadyInMinutes: r.ReadyInMinutes,
		}
	}
	return summaries, nil
}

// get performs a cached, rate-limited GET and decodes the JSON body
// into dest.
func (c *Client) get(ctx context.Context, path string, params url.Values, dest any) error {
	if c.apiKey == "" {
		return domain.ErrCatalogUnavailable
	}
	params.Set("apiKey", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	if cached, ok := c.cache.get(reqURL); ok {
		logger.Debug("catalog cache hit: %s", path)
		return json.Unmarshal(cached.([]byte), dest)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusPaymentRequired, http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return fmt.Errorf("%w: catalog returned %s", domain.ErrCatalogUnavailable, resp.Status)
	}

	// Decode via a byte buffer so the raw body can be cached and
	// re-decoded on later hits.
	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	c.cache.put(reqURL, []byte(raw))
	return json.Unmarshal(raw, dest)
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}
