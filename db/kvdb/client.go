package kvdb

import (
	"context"
	"time"
)

// Client is a key-value store used for short-lived response caching.
// A nil Client is a valid "no cache" configuration at the call sites.
type Client interface {
	Init() error
	Close() error
	GetConf() *Conf

	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error) // val, found, err
	Delete(ctx context.Context, keys ...string) (int64, error)
}
