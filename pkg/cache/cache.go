package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/parceltrack/parceltrack/pkg/common"
	"github.com/parceltrack/parceltrack/pkg/domain/carrier"
	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
)

const (
	CarriersKeyPattern = "carriers"
	ShipmentKeyPattern = "user:%s:shipment:%s"
)

// Cache fronts redis with a process-local read-through layer. It is used for
// reference data (carriers) and hot shipment reads, never for rate-limit
// state, which is purely in-process.
type Cache struct {
	client     *redis.Client
	localCache sync.Map
}

func NewCache(config common.CacheConfig) (*Cache, error) {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	}
	if config.TLS {
		options.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}
	client := redis.NewClient(options)

	return &Cache{
		client: client,
	}, nil
}

// NewCacheWithClient is used by tests to inject a mock client.
func NewCacheWithClient(client *redis.Client) *Cache {
	return &Cache{
		client: client,
	}
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if value, ok := c.localCache.Load(key); ok {
		str, err := safeStringCast(value)
		if err != nil {
			return "", fmt.Errorf("cache value error: %w", err)
		}
		return str, nil
	}
	return c.client.Get(ctx, key).Result()
}

func (c *Cache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return err
	}
	c.localCache.Store(key, value)
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	c.localCache.Delete(key)
	return nil
}

func (c *Cache) SaveCarriers(ctx context.Context, carriers []carrier.Carrier) error {
	carriersJSON, err := json.Marshal(carriers)
	if err != nil {
		return err
	}
	return c.Set(ctx, CarriersKeyPattern, string(carriersJSON), common.CarrierCacheTTL)
}

func (c *Cache) GetCarriers(ctx context.Context) ([]carrier.Carrier, error) {
	res, err := c.Get(ctx, CarriersKeyPattern)
	if err != nil {
		return nil, err
	}
	var carriers []carrier.Carrier
	if err := json.Unmarshal([]byte(res), &carriers); err != nil {
		return nil, err
	}
	return carriers, nil
}

func (c *Cache) SaveShipment(ctx context.Context, userID string, entity *shipment.Shipment) error {
	key := fmt.Sprintf(ShipmentKeyPattern, userID, entity.ID)
	shipmentJSON, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, string(shipmentJSON), common.ShipmentCacheTTL)
}

func (c *Cache) GetShipment(ctx context.Context, userID, shipmentID string) (*shipment.Shipment, error) {
	key := fmt.Sprintf(ShipmentKeyPattern, userID, shipmentID)
	res, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	entity := new(shipment.Shipment)
	if err := json.Unmarshal([]byte(res), entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *Cache) InvalidateShipment(ctx context.Context, userID, shipmentID string) error {
	return c.Delete(ctx, fmt.Sprintf(ShipmentKeyPattern, userID, shipmentID))
}

func (c *Cache) Client() *redis.Client {
	return c.client
}

func safeStringCast(value interface{}) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("invalid type assertion to string")
	}
	return str, nil
}
