package content

import (
	"clinic-site/internal/app/contracts"
	"clinic-site/internal/app/services/core/catalog"
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/queries"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type contentRepository struct {
	Fetcher    contracts.ContentFetcher
	Cache      contracts.RedisRepository
	Log        *zap.Logger
	Revalidate time.Duration
	group      singleflight.Group
}

// NewContentRepository serves content store queries through a fixed-window cache.
// A nil cache or a zero revalidate window disables caching.
func NewContentRepository(fetcher contracts.ContentFetcher, cache contracts.RedisRepository, logger *zap.Logger, revalidate time.Duration) contracts.ContentRepository {
	return &contentRepository{
		Fetcher:    fetcher,
		Cache:      cache,
		Log:        logger,
		Revalidate: revalidate,
	}
}

func (r *contentRepository) FindDoctors(ctx context.Context) ([]cms_dto.Doctor, error) {
	return find[[]cms_dto.Doctor](ctx, r, queries.Doctors, nil)
}

func (r *contentRepository) FindPlans(ctx context.Context) ([]cms_dto.Plan, error) {
	return find[[]cms_dto.Plan](ctx, r, queries.Plans, nil)
}

func (r *contentRepository) FindOffers(ctx context.Context) ([]cms_dto.Offer, error) {
	offers, err := find[[]cms_dto.Offer](ctx, r, queries.Offers, nil)
	if err != nil {
		return nil, err
	}
	return catalog.ActiveOffers(offers), nil
}

func (r *contentRepository) FindHomeOffers(ctx context.Context) ([]cms_dto.Offer, error) {
	offers, err := find[[]cms_dto.Offer](ctx, r, queries.HomeOffers, nil)
	if err != nil {
		return nil, err
	}
	return catalog.ActiveOffers(offers), nil
}

func (r *contentRepository) FindDevices(ctx context.Context) ([]cms_dto.Device, error) {
	return find[[]cms_dto.Device](ctx, r, queries.Devices, nil)
}

func (r *contentRepository) FindHomeDevices(ctx context.Context) ([]cms_dto.Device, error) {
	return find[[]cms_dto.Device](ctx, r, queries.HomeDevices, nil)
}

func (r *contentRepository) FindTestimonials(ctx context.Context) ([]cms_dto.Testimonial, error) {
	testimonials, err := find[[]cms_dto.Testimonial](ctx, r, queries.Testimonials, nil)
	if err != nil {
		return nil, err
	}
	for i := range testimonials {
		testimonials[i].ClampRating()
	}
	return testimonials, nil
}

func (r *contentRepository) FindHomepageSections(ctx context.Context) ([]cms_dto.HomepageSection, error) {
	return find[[]cms_dto.HomepageSection](ctx, r, queries.HomepageSections, nil)
}

func (r *contentRepository) FindAboutSection(ctx context.Context) (*cms_dto.HomepageSection, error) {
	return find[*cms_dto.HomepageSection](ctx, r, queries.AboutSection, nil)
}

func (r *contentRepository) FindClinicInfo(ctx context.Context) (*cms_dto.ClinicInfo, error) {
	return find[*cms_dto.ClinicInfo](ctx, r, queries.ClinicInfo, nil)
}

// Invalidate drops every cached query result.
func (r *contentRepository) Invalidate(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if r.Cache == nil {
		return nil
	}

	deleted, err := r.Cache.DeleteByPattern(ctx, constvars.ContentCacheKeyPrefix+"*")
	if err != nil {
		r.Log.Error("contentRepository.Invalidate error deleting cached content",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	r.Log.Info("contentRepository.Invalidate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, deleted),
	)
	return nil
}

// find decodes the raw result of query into T. Concurrent callers of the same
// query share one fetch and each decodes its own copy.
func find[T any](ctx context.Context, r *contentRepository, query string, params map[string]interface{}) (T, error) {
	var out T

	key, err := cacheKey(query, params)
	if err != nil {
		return out, err
	}

	// The shared fetch outlives any single caller; each caller still stops
	// waiting when its own context ends.
	flight := r.group.DoChan(key, func() (interface{}, error) {
		return r.load(context.WithoutCancel(ctx), key, query, params)
	})

	var result singleflight.Result
	select {
	case result = <-flight:
	case <-ctx.Done():
		return out, ctx.Err()
	}
	if result.Err != nil {
		return out, result.Err
	}

	if err := json.Unmarshal(result.Val.(json.RawMessage), &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r *contentRepository) load(ctx context.Context, key, query string, params map[string]interface{}) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if r.cacheEnabled() {
		cached, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Log.Warn("contentRepository.load cache read failed, fetching from content store",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Error(err),
			)
		} else if cached != "" {
			r.Log.Debug("contentRepository.load cache hit",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Bool(constvars.LoggingCacheHitKey, true),
			)
			return json.RawMessage(cached), nil
		}
	}

	var raw json.RawMessage
	if err := r.Fetcher.Fetch(ctx, query, params, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}

	if r.cacheEnabled() {
		if err := r.Cache.Set(ctx, key, raw, r.Revalidate); err != nil {
			r.Log.Warn("contentRepository.load cache write failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Error(err),
			)
		}
	}

	r.Log.Debug("contentRepository.load fetched from content store",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCacheKey, key),
		zap.Bool(constvars.LoggingCacheHitKey, false),
	)
	return raw, nil
}

func (r *contentRepository) cacheEnabled() bool {
	return r.Cache != nil && r.Revalidate > 0
}

func cacheKey(query string, params map[string]interface{}) (string, error) {
	hash := sha256.New()
	hash.Write([]byte(query))
	if len(params) > 0 {
		encoded, err := json.Marshal(params)
		if err != nil {
			return "", err
		}
		hash.Write(encoded)
	}
	return constvars.ContentCacheKeyPrefix + hex.EncodeToString(hash.Sum(nil)), nil
}
