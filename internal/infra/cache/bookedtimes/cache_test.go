package bookedtimes

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBooking/pkg/logger"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

type fakeRedis struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type mockSource struct {
	mock.Mock
}

func (m *mockSource) GetBookedTimes(ctx context.Context, providerID string, date time.Time) ([]types.TimeString, error) {
	args := m.Called(ctx, providerID, date)
	if times := args.Get(0); times != nil {
		return times.([]types.TimeString), args.Error(1)
	}
	return nil, args.Error(1)
}

type lookupCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (l *lookupCounter) CacheLookup(result string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.counts == nil {
		l.counts = make(map[string]int)
	}
	l.counts[result]++
}

var testDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func TestKey(t *testing.T) {
	assert.Equal(t, "booked:prov-1:2024-06-10", Key("prov-1", testDate))
}

func TestCache_ReadThrough(t *testing.T) {
	rdb := newFakeRedis()
	source := &mockSource{}
	counter := &lookupCounter{}
	source.On("GetBookedTimes", mock.Anything, "prov-1", testDate).
		Return([]types.TimeString{"10:00 AM"}, nil).Once()

	cache := NewCache(rdb, source, time.Minute, counter, logger.NewNop())

	times, err := cache.GetBookedTimes(context.Background(), "prov-1", testDate)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00 AM"}, times)

	// второй запрос обслуживается кэшем
	times, err = cache.GetBookedTimes(context.Background(), "prov-1", testDate)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00 AM"}, times)

	source.AssertNumberOfCalls(t, "GetBookedTimes", 1)
	assert.Equal(t, 1, counter.counts[lookupMiss])
	assert.Equal(t, 1, counter.counts[lookupHit])
}

func TestCache_Invalidate(t *testing.T) {
	rdb := newFakeRedis()
	source := &mockSource{}
	source.On("GetBookedTimes", mock.Anything, "prov-1", testDate).
		Return([]types.TimeString{}, nil).Once()
	source.On("GetBookedTimes", mock.Anything, "prov-1", testDate).
		Return([]types.TimeString{"10:00 AM"}, nil).Once()

	cache := NewCache(rdb, source, time.Minute, &lookupCounter{}, logger.NewNop())

	times, err := cache.GetBookedTimes(context.Background(), "prov-1", testDate)
	require.NoError(t, err)
	assert.Empty(t, times)

	require.NoError(t, cache.Invalidate(context.Background(), "prov-1", testDate))

	times, err = cache.GetBookedTimes(context.Background(), "prov-1", testDate)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00 AM"}, times)
	source.AssertExpectations(t)
}

func TestCache_RedisDownFallsBackToSource(t *testing.T) {
	rdb := newFakeRedis()
	rdb.getErr = errors.New("dial tcp: connection refused")
	rdb.setErr = errors.New("dial tcp: connection refused")

	source := &mockSource{}
	counter := &lookupCounter{}
	source.On("GetBookedTimes", mock.Anything, "prov-1", testDate).
		Return([]types.TimeString{"9:00 AM"}, nil)

	cache := NewCache(rdb, source, time.Minute, counter, logger.NewNop())

	times, err := cache.GetBookedTimes(context.Background(), "prov-1", testDate)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"9:00 AM"}, times)
	assert.Equal(t, 1, counter.counts[lookupError])
}

func TestCache_CorruptedEntry(t *testing.T) {
	rdb := newFakeRedis()
	rdb.data[Key("prov-1", testDate)] = "{oops"

	source := &mockSource{}
	source.On("GetBookedTimes", mock.Anything, "prov-1", testDate).
		Return([]types.TimeString{"9:30 AM"}, nil).Once()

	cache := NewCache(rdb, source, time.Minute, &lookupCounter{}, logger.NewNop())

	times, err := cache.GetBookedTimes(context.Background(), "prov-1", testDate)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"9:30 AM"}, times)
	assert.Equal(t, `["9:30 AM"]`, rdb.data[Key("prov-1", testDate)])
}

func TestCache_SourceErrorPropagates(t *testing.T) {
	source := &mockSource{}
	source.On("GetBookedTimes", mock.Anything, "prov-1", testDate).
		Return(nil, errors.New("db down"))

	cache := NewCache(newFakeRedis(), source, time.Minute, &lookupCounter{}, logger.NewNop())

	_, err := cache.GetBookedTimes(context.Background(), "prov-1", testDate)
	assert.Error(t, err)
}

func TestPassthrough(t *testing.T) {
	source := &mockSource{}
	source.On("GetBookedTimes", mock.Anything, "prov-1", testDate).
		Return([]types.TimeString{"1:00 PM"}, nil).Twice()

	p := NewPassthrough(source)

	for i := 0; i < 2; i++ {
		times, err := p.GetBookedTimes(context.Background(), "prov-1", testDate)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"1:00 PM"}, times)
	}
	assert.NoError(t, p.Invalidate(context.Background(), "prov-1", testDate))
	source.AssertExpectations(t)
}
