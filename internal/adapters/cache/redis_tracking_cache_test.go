package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"parcel-tracking-service/internal/domain"
)

// countingResolver records how many times each code hits the inner resolver.
type countingResolver struct {
	records map[string]domain.TrackingRecord
	calls   map[string]int
}

func (r *countingResolver) Resolve(ctx context.Context, code string) (domain.TrackingRecord, error) {
	r.calls[code]++
	rec, ok := r.records[code]
	if !ok {
		return domain.TrackingRecord{}, domain.ErrNotFound
	}
	return rec, nil
}

func (r *countingResolver) ListByEmail(ctx context.Context, email string) ([]domain.TrackingRecord, error) {
	out := make([]domain.TrackingRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func testRecord() domain.TrackingRecord {
	return domain.TrackingRecord{
		Code:      "BR123456789PT",
		Status:    domain.StatusDelivered,
		Recipient: "João Silva",
		History: []domain.TrackingEvent{
			{Status: domain.StatusPending, Date: time.Date(2025, 6, 11, 10, 21, 0, 0, time.UTC)},
			{Status: domain.StatusTransit, Date: time.Date(2025, 6, 12, 16, 4, 0, 0, time.UTC)},
			{Status: domain.StatusDelivered, Date: time.Date(2025, 6, 13, 8, 41, 0, 0, time.UTC)},
		},
	}
}

func setup(t *testing.T) (*RedisTrackingCache, *countingResolver, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner := &countingResolver{
		records: map[string]domain.TrackingRecord{"BR123456789PT": testRecord()},
		calls:   map[string]int{},
	}
	return NewRedisTrackingCache(inner, client, time.Minute), inner, mr
}

func TestResolveCachesHits(t *testing.T) {
	cache, inner, _ := setup(t)
	ctx := context.Background()

	first, err := cache.Resolve(ctx, "BR123456789PT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := cache.Resolve(ctx, "BR123456789PT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inner.calls["BR123456789PT"] != 1 {
		t.Fatalf("inner resolver called %d times, want 1", inner.calls["BR123456789PT"])
	}
	if first.Status != second.Status || len(first.History) != len(second.History) {
		t.Fatal("cached record differs from the original")
	}
	for i := range first.History {
		if !first.History[i].Date.Equal(second.History[i].Date) {
			t.Fatalf("history[%d] date drifted through the cache", i)
		}
	}
}

func TestResolveDoesNotCacheMisses(t *testing.T) {
	cache, inner, _ := setup(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := cache.Resolve(ctx, "ZZZ000"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	}
	if inner.calls["ZZZ000"] != 2 {
		t.Fatalf("misses must not be cached, inner called %d times", inner.calls["ZZZ000"])
	}
}

func TestResolveExpiredEntryRefetches(t *testing.T) {
	cache, inner, mr := setup(t)
	ctx := context.Background()

	if _, err := cache.Resolve(ctx, "BR123456789PT"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := cache.Resolve(ctx, "BR123456789PT"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls["BR123456789PT"] != 2 {
		t.Fatalf("inner resolver called %d times after expiry, want 2", inner.calls["BR123456789PT"])
	}
}
