package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	lowimpl "github.com/redis/go-redis/v9"

	"github.com/arsurgical/hub-backend/db/kvdb"
)

type Client struct {
	Conf *kvdb.Conf

	// implementation details, not exported
	internal *lowimpl.Client
}

// Ensure redis.Client implements kvdb.Client interface
var _ kvdb.Client = (*Client)(nil)

func (c *Client) Init() error {
	c.internal = lowimpl.NewClient(&lowimpl.Options{
		Addr:     c.Conf.Addr,
		Password: c.Conf.PW,
		DB:       c.Conf.DB,
	})

	// go-redis dials lazily; ping now so a bad address surfaces here
	// instead of as a failed round-trip on every cached request.
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.internal.Ping(ctx).Err(); err != nil {
		_ = c.internal.Close()
		c.internal = nil
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("[INFO] redis client initialized")
	return nil
}

func (c *Client) Close() error {
	if c.internal == nil {
		return nil
	}
	return c.internal.Close()
}

func (c *Client) GetConf() *kvdb.Conf {
	return c.Conf
}

func (c *Client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return c.internal.Set(ctx, key, value, expiration).Err()
}

func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.internal.Get(ctx, key).Result()
	if errors.Is(err, lowimpl.Nil) {
		return "", false, nil // redis.Nil -> ok: false, err: nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *Client) Delete(ctx context.Context, keys ...string) (int64, error) {
	return c.internal.Del(ctx, keys...).Result()
}
