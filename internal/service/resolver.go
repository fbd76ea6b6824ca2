package service

import (
	"context"
	"fmt"
	"time"

	"linkgate/internal/cache"
	"linkgate/internal/model"

	"github.com/rs/zerolog/log"
)

// DefaultStatsTimeout bounds a detached stats write
const DefaultStatsTimeout = 5 * time.Second

// Resolver answers code lookups from the redirect cache, falling back to
// the registry on a miss.
type Resolver struct {
	cache        *cache.LRU
	lookup       URLLookup
	clicks       ClickRecorder
	now          func() time.Time
	statsTimeout time.Duration
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithClock overrides the clock used for expiry checks
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) {
		r.now = now
	}
}

// WithStatsTimeout overrides the timeout of detached stats writes
func WithStatsTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.statsTimeout = d
	}
}

// NewResolver creates a new Resolver. clicks may be nil to disable stats.
func NewResolver(c *cache.LRU, lookup URLLookup, clicks ClickRecorder, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cache:        c,
		lookup:       lookup,
		clicks:       clicks,
		now:          time.Now,
		statsTimeout: DefaultStatsTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps code to its destination. Expired records are cached like
// live ones and reported as gone without another registry round-trip.
func (r *Resolver) Resolve(ctx context.Context, code string) (*model.Resolution, error) {
	entry, hit := r.cache.Get(code)
	if !hit {
		rec, err := r.lookup.GetByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s: %w", code, err)
		}
		if rec == nil {
			return &model.Resolution{Status: model.ResolveNotFound}, nil
		}
		entry = cache.Entry{LongURL: rec.LongURL, ExpiresAt: rec.ExpiresAt}
		r.cache.Set(code, entry)
	}

	res := &model.Resolution{
		Status:    model.ResolveFound,
		LongURL:   entry.LongURL,
		ExpiresAt: entry.ExpiresAt,
		CacheHit:  hit,
	}

	if model.ExpiredAt(entry.ExpiresAt, r.now()) {
		res.Status = model.ResolveGone
		return res, nil
	}

	r.dispatchClick(code)

	return res, nil
}

// Invalidate drops the cached entry for code. Writers call it after a
// successful update or delete, before answering their caller.
func (r *Resolver) Invalidate(code string) {
	r.cache.Delete(code)
}

// dispatchClick records the click on a detached goroutine. The redirect
// never waits on it and its error is logged, then dropped.
func (r *Resolver) dispatchClick(code string) {
	if r.clicks == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.statsTimeout)
		defer cancel()

		if err := r.clicks.RecordClick(ctx, code); err != nil {
			log.Warn().Err(err).Str("code", code).Msg("Failed to record click")
		}
	}()
}
