package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"structon/generator/internal/config"
	"structon/generator/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// ProductsClient fetches the product snapshot from the content API.
type ProductsClient interface {
	// FetchAllProducts pages through /products until the feed is exhausted.
	// When a page fails, pagination halts and whatever was accumulated is
	// returned together with the error: a partial snapshot beats blanking
	// the whole catalog. Callers must not infer "zero products exist" from
	// an empty slice without also checking the error.
	FetchAllProducts(ctx context.Context) ([]domain.Product, error)
}

type productsClient struct {
	rl         ratelimit.Limiter
	config     config.APIConfig
	baseURL    string
	httpClient *resty.Client
}

type productListing struct {
	Products []domain.Product `json:"products"`
}

func NewProductsClient(cfg config.APIConfig) ProductsClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("User-Agent", "structon-generator/1.0").
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &productsClient{
		rl:         rl,
		config:     cfg,
		baseURL:    cfg.BaseURL,
		httpClient: client,
	}
}

func (c *productsClient) FetchAllProducts(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0, c.config.PageSize)

	for offset := 0; ; offset += c.config.PageSize {
		batch, err := c.fetchPage(ctx, c.config.PageSize, offset)
		if err != nil {
			log.Errorf("❌ Product fetch halted at offset %d: %v", offset, err)
			return products, fmt.Errorf("fetching products at offset %d: %w", offset, err)
		}

		if len(batch) == 0 {
			break
		}

		products = append(products, batch...)
		log.Debugf("Fetched %d products (offset %d)", len(batch), offset)

		if len(batch) < c.config.PageSize {
			break
		}
	}

	log.Infof("✅ Fetched %d products from content API", len(products))
	return products, nil
}

func (c *productsClient) fetchPage(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	c.rl.Take()

	url := fmt.Sprintf("%s/products?limit=%d&offset=%d", c.baseURL, limit, offset)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	var listing productListing
	if err := json.Unmarshal(resp.Bytes(), &listing); err != nil {
		return nil, fmt.Errorf("failed to decode product listing: %w", err)
	}

	return listing.Products, nil
}
