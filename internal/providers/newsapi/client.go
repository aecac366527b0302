package newsapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/ratelimit"
)

const PROVIDER_NAME = domain.PROVIDER_NEWSAPI

var ErrNoAPIKey = errors.New("no API key provided")

// EverythingResponse represents the response of /v2/everything
type EverythingResponse struct {
	Status       string    `json:"status"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Article is one news article
type Article struct {
	Source      Source     `json:"source"`
	Author      *string    `json:"author"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	URL         string     `json:"url"`
	URLToImage  *string    `json:"urlToImage"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// Source identifies the publisher of an article
type Source struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// Client defines the interface for NewsAPI client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/newsapi_client.go -package=mocks -mock_names=Client=MockNewsAPIClient
type Client interface {
	// GetEverything searches English articles matching query, newest first
	GetEverything(ctx context.Context, query string, pageSize int) ([]Article, error)
}

// NewsAPIClient implements NewsAPI client
type NewsAPIClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new NewsAPI client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, json adapter.JSON) Client {
	return &NewsAPIClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         strings.TrimRight(apiURL, "/"),
		apiKey:         apiKey,
		json:           json,
	}
}

// GetEverything fetches /v2/everything
func (c *NewsAPIClient) GetEverything(ctx context.Context, query string, pageSize int) ([]Article, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	if pageSize > 0 {
		params.Set("pageSize", strconv.Itoa(pageSize))
	}
	requestURL := c.apiURL + "/v2/everything?" + params.Encode()
	headers := map[string]string{"X-Api-Key": c.apiKey}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, requestURL, headers)
	})
	if err != nil {
		var upstreamErr *domain.UpstreamError
		if errors.As(err, &upstreamErr) {
			upstreamErr.Provider = PROVIDER_NAME
		}
		return nil, fmt.Errorf("failed to call NewsAPI: %w", err)
	}

	var response EverythingResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NewsAPI response: %w: %v", domain.ErrMalformedPayload, err)
	}

	if response.Status != "ok" {
		return nil, fmt.Errorf("NewsAPI error %s: %s", response.Code, response.Message)
	}

	// Removed articles come back as placeholders without a url
	articles := make([]Article, 0, len(response.Articles))
	for _, article := range response.Articles {
		if article.URL == "" || article.Title == "[Removed]" {
			continue
		}
		articles = append(articles, article)
	}

	if len(articles) == 0 {
		return nil, fmt.Errorf("news articles: %w", domain.ErrEmptyPayload)
	}

	return articles, nil
}
