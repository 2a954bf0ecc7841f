package request

import (
	"fmt"

	"github.com/parceltrack/parceltrack/pkg/domain/integration"
)

type CreateIntegrationRequest struct {
	Platform    string `json:"platform"`
	ShopDomain  string `json:"shop_domain"`
	AccessToken string `json:"access_token"`
}

func (r *CreateIntegrationRequest) Validate() error {
	if r.Platform != integration.PlatformShopify && r.Platform != integration.PlatformTikTok {
		return fmt.Errorf("unsupported platform: %s", r.Platform)
	}
	if r.ShopDomain == "" {
		return fmt.Errorf("shop domain is required")
	}
	if r.AccessToken == "" {
		return fmt.Errorf("access token is required")
	}
	return nil
}
