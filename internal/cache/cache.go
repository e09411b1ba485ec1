package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client caches rendered catalog payloads (projects, homepage, stats) in
// Redis. It fails safe: a nil client or an unreachable Redis turns every
// call into a miss, so the API keeps serving from MySQL without it.
type Client struct {
	client *redis.Client
}

// New connects a cache client. Connectivity is not checked here; the first
// failing call degrades to a miss instead.
func New(addr, password string, db int) *Client {
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Get returns the cached payload, or nil on a miss or any Redis error.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores a payload with a TTL, ignoring Redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Set(ctx, key, value, ttl)
	return nil
}

// Delete invalidates a key, ignoring Redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Del(ctx, key)
	return nil
}
