package bookedtimes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

const keyPrefix = "booked"

const (
	lookupHit   = "hit"
	lookupMiss  = "miss"
	lookupError = "error"
)

// Cache read-through кэш занятых времён провайдера на дату.
// Ошибки Redis не прерывают запрос: данные берутся из Source.
type Cache struct {
	client  RedisClient
	source  Source
	ttl     time.Duration
	metrics MetricsRecorder
	log     Logger
}

// NewCache создает кэш поверх source
func NewCache(client RedisClient, source Source, ttl time.Duration, metrics MetricsRecorder, log Logger) *Cache {
	return &Cache{
		client:  client,
		source:  source,
		ttl:     ttl,
		metrics: metrics,
		log:     log,
	}
}

// GetBookedTimes возвращает занятые времена из кэша, при промахе читает источник и кэширует результат
func (c *Cache) GetBookedTimes(ctx context.Context, providerID string, date time.Time) ([]types.TimeString, error) {
	key := Key(providerID, date)

	raw, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var times []types.TimeString
		if jsonErr := json.Unmarshal([]byte(raw), &times); jsonErr == nil {
			c.metrics.CacheLookup(lookupHit)
			return times, nil
		}
		c.log.Warn("bookedtimes: corrupted cache entry key=%s, reading from storage", key)
		c.metrics.CacheLookup(lookupError)
	case errors.Is(err, redis.Nil):
		c.metrics.CacheLookup(lookupMiss)
	default:
		c.log.Warn("bookedtimes: redis get failed key=%s: %v", key, err)
		c.metrics.CacheLookup(lookupError)
	}

	times, err := c.source.GetBookedTimes(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(times)
	if err != nil {
		return times, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("bookedtimes: redis set failed key=%s: %v", key, err)
	}

	return times, nil
}

// Invalidate удаляет закэшированные времена провайдера на дату
func (c *Cache) Invalidate(ctx context.Context, providerID string, date time.Time) error {
	key := Key(providerID, date)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("bookedtimes: invalidate key=%s: %w", key, err)
	}
	return nil
}

// Key ключ кэша: booked:{provider}:{YYYY-MM-DD}
func Key(providerID string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, providerID, date.Format(domain.DateFormat))
}
