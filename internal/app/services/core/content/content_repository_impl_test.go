package content

import (
	"clinic-site/internal/pkg/queries"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFetcher struct {
	mu      sync.Mutex
	results map[string]string
	errs    map[string]error
	calls   int32
	delay   time.Duration
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{results: make(map[string]string), errs: make(map[string]error)}
}

func (f *fakeFetcher) Fetch(ctx context.Context, query string, params map[string]interface{}, out interface{}) error {
	atomic.AddInt32(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	result, ok := f.results[query]
	err := f.errs[query]
	f.mu.Unlock()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(result), out)
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

func (c *memoryCache) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	deleted := 0
	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
			deleted++
		}
	}
	return deleted, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.data[key] = string(encoded)
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memoryCache) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	return 0, nil
}

func (c *memoryCache) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

func TestFindServesFromCache(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results[queries.Doctors] = `[{"_id":"d1","name":"Jane"}]`
	cache := newMemoryCache()
	repo := NewContentRepository(fetcher, cache, zap.NewNop(), time.Minute)

	first, err := repo.FindDoctors(context.Background())
	require.NoError(t, err)
	second, err := repo.FindDoctors(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetcher.calls))
}

func TestFindCoalescesConcurrentMisses(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results[queries.Plans] = `[{"_id":"p1","name":"Cleaning","price":"100"}]`
	fetcher.delay = 50 * time.Millisecond
	repo := NewContentRepository(fetcher, nil, zap.NewNop(), 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			plans, err := repo.FindPlans(context.Background())
			assert.NoError(t, err)
			assert.Len(t, plans, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&fetcher.calls))
}

type gatedFetcher struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (f *gatedFetcher) Fetch(ctx context.Context, query string, params map[string]interface{}, out interface{}) error {
	f.once.Do(func() { close(f.started) })
	select {
	case <-f.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return json.Unmarshal([]byte(`[{"_id":"d1","name":"Jane"}]`), out)
}

func TestFindSharedFetchSurvivesCanceledCaller(t *testing.T) {
	fetcher := &gatedFetcher{started: make(chan struct{}), release: make(chan struct{})}
	repo := NewContentRepository(fetcher, nil, zap.NewNop(), 0)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := repo.FindDoctors(firstCtx)
		firstErr <- err
	}()
	<-fetcher.started

	type outcome struct {
		count int
		err   error
	}
	second := make(chan outcome, 1)
	go func() {
		doctors, err := repo.FindDoctors(context.Background())
		second <- outcome{len(doctors), err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(fetcher.release)
	result := <-second
	require.NoError(t, result.err)
	assert.Equal(t, 1, result.count)
}

func TestFindOffersDropsInactive(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results[queries.Offers] = `[{"_id":"o1","title":"A","active":true},{"_id":"o2","title":"B","active":false}]`
	repo := NewContentRepository(fetcher, newMemoryCache(), zap.NewNop(), time.Minute)

	offers, err := repo.FindOffers(context.Background())

	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "o1", offers[0].ID)
}

func TestFindTestimonialsClampsRating(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results[queries.Testimonials] = `[{"_id":"t1","name":"A","rating":9,"quote":"q"},{"_id":"t2","name":"B","rating":0,"quote":"q"}]`
	repo := NewContentRepository(fetcher, nil, zap.NewNop(), 0)

	testimonials, err := repo.FindTestimonials(context.Background())

	require.NoError(t, err)
	assert.Equal(t, float64(5), testimonials[0].Rating)
	assert.Equal(t, float64(1), testimonials[1].Rating)
}

func TestFindClinicInfoMissing(t *testing.T) {
	repo := NewContentRepository(newFakeFetcher(), newMemoryCache(), zap.NewNop(), time.Minute)

	info, err := repo.FindClinicInfo(context.Background())

	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestFindErrorIsNotCached(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.errs[queries.Devices] = errors.New("content store unavailable")
	cache := newMemoryCache()
	repo := NewContentRepository(fetcher, cache, zap.NewNop(), time.Minute)

	_, err := repo.FindDevices(context.Background())
	require.Error(t, err)

	fetcher.mu.Lock()
	delete(fetcher.errs, queries.Devices)
	fetcher.results[queries.Devices] = `[{"_id":"v1","name":"Chair","category":"dental"}]`
	fetcher.mu.Unlock()

	devices, err := repo.FindDevices(context.Background())
	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestInvalidate(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results[queries.HomepageSections] = `[{"sectionTitle":"About","sectionCategory":"نبذة عنا"}]`
	cache := newMemoryCache()
	repo := NewContentRepository(fetcher, cache, zap.NewNop(), time.Minute)

	_, err := repo.FindHomepageSections(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Invalidate(context.Background()))
	_, err = repo.FindHomepageSections(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&fetcher.calls))
}

func TestCacheKeyIncludesParams(t *testing.T) {
	withoutParams, err := cacheKey(queries.Doctors, nil)
	require.NoError(t, err)
	withParams, err := cacheKey(queries.Doctors, map[string]interface{}{"department": "laser"})
	require.NoError(t, err)

	assert.NotEqual(t, withoutParams, withParams)
	assert.True(t, strings.HasPrefix(withParams, "content:query:"))
}

func TestHomePageMarksFailedBlocks(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results[queries.Doctors] = `[{"_id":"d1","name":"Jane"}]`
	fetcher.results[queries.Testimonials] = `[{"_id":"t1","name":"A","rating":5,"quote":"q","featured":true},{"_id":"t2","name":"B","rating":4,"quote":"q"}]`
	fetcher.errs[queries.HomeOffers] = errors.New("boom")
	repo := NewContentRepository(fetcher, nil, zap.NewNop(), 0)
	uc := NewContentUsecase(repo, zap.NewNop())

	page, err := uc.HomePage(context.Background())

	require.NoError(t, err)
	assert.Len(t, page.Doctors, 1)
	assert.Len(t, page.Testimonials, 1)
	assert.True(t, page.Failed[BlockOffers])
	assert.False(t, page.Failed[BlockDoctors])
	assert.Nil(t, page.About)
}

func TestUsecaseFilters(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results[queries.Doctors] = `[{"_id":"d1","name":"Jane"},{"_id":"d2","name":"Omar","department":"laser"}]`
	uc := NewContentUsecase(NewContentRepository(fetcher, nil, zap.NewNop(), 0), zap.NewNop())

	all, err := uc.Doctors(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	dental, err := uc.Doctors(context.Background(), "dental")
	require.NoError(t, err)
	require.Len(t, dental, 1)
	assert.Equal(t, "Jane", dental[0].Name)
}
