package bookedtimes

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// Source первичный источник занятых времён (БД)
type Source interface {
	GetBookedTimes(ctx context.Context, providerID string, date time.Time) ([]types.TimeString, error)
}

// RedisClient подмножество команд go-redis, используемых кэшем
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// MetricsRecorder учёт попаданий в кэш
type MetricsRecorder interface {
	CacheLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
