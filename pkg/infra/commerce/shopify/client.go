package shopify

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
	accessTokenHeader = "X-Shopify-Access-Token"
	productsPath      = "/admin/api/2024-01/products.json"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	breaker    httpx.CircuitBreaker
}

// NewClient builds the Shopify catalog client. baseURL overrides the shop
// domain when set (used in tests and self-hosted mocks); otherwise requests
// go to https://{shop_domain}.
func NewClient(baseURL string, timeout time.Duration) commerce.Client {
	return &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    httpx.NewCircuitBreaker("shopify", 30*time.Second, 3),
	}
}

func (c *client) Platform() string {
	return integration.PlatformShopify
}

type productsResponse struct {
	Products []struct {
		ID       int64  `json:"id"`
		Title    string `json:"title"`
		Variants []struct {
			Price             string `json:"price"`
			InventoryQuantity int    `json:"inventory_quantity"`
		} `json:"variants"`
	} `json:"products"`
}

func (c *client) FetchProducts(ctx context.Context, creds commerce.Credentials) ([]commerce.RemoteProduct, error) {
	url := c.baseURL
	if url == "" {
		url = fmt.Sprintf("https://%s", creds.ShopDomain)
	}
	url += productsPath

	var body []byte
	err := c.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
			return fmt.Errorf("shopify returned status %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shopify products: %w", err)
	}

	var parsed productsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode shopify products: %w", err)
	}

	products := make([]commerce.RemoteProduct, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		product := commerce.RemoteProduct{
			ExternalID: fmt.Sprintf("%d", p.ID),
			Title:      p.Title,
			Currency:   "USD",
		}
		if len(p.Variants) > 0 {
			product.PriceCents = parsePriceCents(p.Variants[0].Price)
			product.Inventory = p.Variants[0].InventoryQuantity
		}
		products = append(products, product)
	}
	return products, nil
}

// parsePriceCents converts Shopify's decimal string price ("19.99") to cents
// without floating point drift. Malformed input yields 0.
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
