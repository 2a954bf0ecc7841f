package tiktok

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/parceltrack/parceltrack/pkg/domain/integration"
	"github.com/parceltrack/parceltrack/pkg/infra/commerce"
	"github.com/parceltrack/parceltrack/pkg/infra/httpx"
)

const (
	accessTokenHeader = "x-tts-access-token"
	productsPath      = "/api/products/search"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	breaker    httpx.CircuitBreaker
}

func NewClient(baseURL string, timeout time.Duration) commerce.Client {
	if baseURL == "" {
		baseURL = "https://open-api.tiktokglobalshop.com"
	}
	return &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    httpx.NewCircuitBreaker("tiktok", 30*time.Second, 3),
	}
}

func (c *client) Platform() string {
	return integration.PlatformTikTok
}

type productsResponse struct {
	Data struct {
		Products []struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Skus   []struct {
				Price struct {
					Amount   string `json:"sale_price"`
					Currency string `json:"currency"`
				} `json:"price"`
				Stock int `json:"stock_num"`
			} `json:"skus"`
		} `json:"products"`
	} `json:"data"`
}

func (c *client) FetchProducts(ctx context.Context, creds commerce.Credentials) ([]commerce.RemoteProduct, error) {
	url := c.baseURL + productsPath

	var body []byte
	err := c.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set(accessTokenHeader, creds.AccessToken)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("tiktok shop returned status %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tiktok products: %w", err)
	}

	var parsed productsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode tiktok products: %w", err)
	}

	products := make([]commerce.RemoteProduct, 0, len(parsed.Data.Products))
	for _, p := range parsed.Data.Products {
		product := commerce.RemoteProduct{
			ExternalID: p.ID,
			Title:      p.Title,
			Currency:   "USD",
		}
		if len(p.Skus) > 0 {
			product.PriceCents = parsePriceCents(p.Skus[0].Price.Amount)
			product.Inventory = p.Skus[0].Stock
			if p.Skus[0].Price.Currency != "" {
				product.Currency = p.Skus[0].Price.Currency
			}
		}
		products = append(products, product)
	}
	return products, nil
}

func parsePriceCents(price string) int64 {
	var dollars, cents int64
	var seenDot bool
	var centDigits int
	for _, r := range price {
		switch {
		case r == '.':
			if seenDot {
				return 0
			}
			seenDot = true
		case r < '0' || r > '9':
			return 0
		case seenDot:
			if centDigits < 2 {
				cents = cents*10 + int64(r-'0')
				centDigits++
			}
		default:
			dollars = dollars*10 + int64(r-'0')
		}
	}
	if centDigits == 1 {
		cents *= 10
	}
	return dollars*100 + cents
}
