package common

import "time"

const (
	CarrierCacheTTL  = 1 * time.Hour
	ShipmentCacheTTL = 5 * time.Minute
)

// CacheConfig holds redis connection settings.
type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TLS      bool
}
