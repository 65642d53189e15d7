package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedClient wraps a Client with a redis cache keyed by coordinates
// truncated to three decimals (~110 m cells). A nil redis client disables
// caching and every call goes straight to the provider. Cache errors are
// ignored: a cold or broken cache only costs an extra lookup.
type CachedClient struct {
	client *Client
	rdb    *redis.Client
	ttl    time.Duration
}

// NewCachedClient builds a CachedClient. ttl <= 0 defaults to one hour.
func NewCachedClient(client *Client, rdb *redis.Client, ttl time.Duration) *CachedClient {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedClient{client: client, rdb: rdb, ttl: ttl}
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("revgeo:%.3f:%.3f", lat, lon)
}

// ReverseGeocode resolves coordinates through the cache.
func (c *CachedClient) ReverseGeocode(ctx context.Context, lat, lon float64) (*AddressInfo, error) {
	key := cacheKey(lat, lon)
	if c.rdb != nil {
		if s, _ := c.rdb.Get(ctx, key).Result(); s != "" {
			var info AddressInfo
			if err := json.Unmarshal([]byte(s), &info); err == nil {
				return &info, nil
			}
		}
	}

	info, err := c.client.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if c.rdb != nil {
		if b, err := json.Marshal(info); err == nil {
			_ = c.rdb.Set(ctx, key, string(b), c.ttl).Err()
		}
	}
	return info, nil
}

// NearbyPlaces passes through to the underlying client; place lists are
// radius-dependent and not worth cache slots.
func (c *CachedClient) NearbyPlaces(ctx context.Context, lat, lon float64, radiusMeters int) ([]string, error) {
	return c.client.NearbyPlaces(ctx, lat, lon, radiusMeters)
}
