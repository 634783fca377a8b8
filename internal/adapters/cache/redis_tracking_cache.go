// Package cache puts a Redis cache in front of a TrackingResolver so
// repeated lookups of a hot code do not hammer the upstream backend.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/ports"
)

const keyPrefix = "tracking:"

// RedisTrackingCache caches successful resolves for a fixed TTL. Misses
// and errors are never cached: a code that does not exist yet may start
// existing the moment the carrier scans it. Cache failures degrade to the
// inner resolver; a broken Redis must not take tracking down.
type RedisTrackingCache struct {
	Inner  ports.TrackingResolver
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTrackingCache(inner ports.TrackingResolver, client *redis.Client, ttl time.Duration) *RedisTrackingCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisTrackingCache{Inner: inner, Client: client, TTL: ttl}
}

type cachedEvent struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
}

type cachedRecord struct {
	Code      string        `json:"code"`
	Status    string        `json:"status"`
	Recipient string        `json:"recipient"`
	History   []cachedEvent `json:"history"`
}

func (c *RedisTrackingCache) Resolve(ctx context.Context, code string) (domain.TrackingRecord, error) {
	key := keyPrefix + code

	raw, err := c.Client.Get(ctx, key).Result()
	if err == nil {
		var cached cachedRecord
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return fromCached(cached), nil
		}
		log.Printf("tracking cache: bad payload key=%s", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("tracking cache: get failed key=%s err=%v", key, err)
	}

	record, err := c.Inner.Resolve(ctx, code)
	if err != nil {
		return domain.TrackingRecord{}, err
	}

	payload, err := json.Marshal(toCached(record))
	if err != nil {
		return domain.TrackingRecord{}, fmt.Errorf("tracking cache: marshal record: %w", err)
	}
	if err := c.Client.Set(ctx, key, payload, c.TTL).Err(); err != nil {
		log.Printf("tracking cache: set failed key=%s err=%v", key, err)
	}

	return record, nil
}

// ListByEmail is a pass-through; per-account listings change with every
// admin edit and are not worth caching.
func (c *RedisTrackingCache) ListByEmail(ctx context.Context, email string) ([]domain.TrackingRecord, error) {
	return c.Inner.ListByEmail(ctx, email)
}

func toCached(r domain.TrackingRecord) cachedRecord {
	out := cachedRecord{
		Code:      r.Code,
		Status:    string(r.Status),
		Recipient: r.Recipient,
		History:   make([]cachedEvent, 0, len(r.History)),
	}
	for _, ev := range r.History {
		out.History = append(out.History, cachedEvent{Status: string(ev.Status), Date: ev.Date})
	}
	return out
}

func fromCached(c cachedRecord) domain.TrackingRecord {
	out := domain.TrackingRecord{
		Code:      c.Code,
		Status:    domain.Status(c.Status),
		Recipient: c.Recipient,
		History:   make([]domain.TrackingEvent, 0, len(c.History)),
	}
	for _, ev := range c.History {
		out.History = append(out.History, domain.TrackingEvent{Status: domain.Status(ev.Status), Date: ev.Date})
	}
	return out
}
