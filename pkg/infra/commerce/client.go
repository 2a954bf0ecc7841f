package commerce

import (
	"context"
)

// RemoteProduct is the platform-agnostic shape of one catalog entry fetched
// from a connected shop.
type RemoteProduct struct {
	ExternalID string `json:"external_id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Currency   string `json:"currency"`
	Inventory  int    `json:"inventory"`
}

// Credentials identifies the shop on the remote platform.
type Credentials struct {
	ShopDomain  string `json:"shop_domain"`
	AccessToken string `json:"access_token"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

// Client is an opaque request/response view of one commerce platform. The
// sync layer treats every platform the same way through it.
type Client interface {
	Platform() string
	FetchProducts(ctx context.Context, creds Credentials) ([]RemoteProduct, error)
}
