// Package throttle provides keyed token buckets, used to rate-limit
// credential guessing on the login endpoint.
package throttle

import (
	"sync"
	"time"
)

type Conf struct {
	Burst     int           // bucket capacity, also the initial fill
	Increment int           // tokens added back every Period
	Period    time.Duration // refill interval
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// Buckets tracks one token bucket per key (client IP, account, ...).
type Buckets[K comparable] struct {
	conf Conf

	mu      sync.Mutex
	buckets map[K]*bucket
}

func NewBuckets[K comparable](conf Conf) *Buckets[K] {
	return &Buckets[K]{
		conf:    conf,
		buckets: make(map[K]*bucket),
	}
}

// Allow consumes one token from key's bucket, reporting whether the
// caller may proceed.
func (bs *Buckets[K]) Allow(key K) bool {
	now := time.Now()

	bs.mu.Lock()
	defer bs.mu.Unlock()

	b, ok := bs.buckets[key]
	if !ok {
		b = &bucket{tokens: bs.conf.Burst, lastRefill: now}
		bs.buckets[key] = b
	} else {
		b.refill(now, bs.conf)
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Prune drops buckets that have fully refilled; callers may run it
// periodically to bound memory on long-lived processes.
func (bs *Buckets[K]) Prune() {
	now := time.Now()

	bs.mu.Lock()
	defer bs.mu.Unlock()

	for key, b := range bs.buckets {
		b.refill(now, bs.conf)
		if b.tokens >= bs.conf.Burst {
			delete(bs.buckets, key)
		}
	}
}

func (b *bucket) refill(now time.Time, conf Conf) {
	if conf.Period <= 0 || conf.Increment <= 0 {
		return
	}
	elapsed := now.Sub(b.lastRefill)
	periods := int(elapsed / conf.Period)
	if periods <= 0 {
		return
	}
	b.tokens += periods * conf.Increment
	if b.tokens > conf.Burst {
		b.tokens = conf.Burst
	}
	b.lastRefill = b.lastRefill.Add(time.Duration(periods) * conf.Period)
}
