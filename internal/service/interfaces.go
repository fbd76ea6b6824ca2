package service

import (
	"context"
	"time"

	"linkgate/internal/model"
)

// Store is the backing store of short URL records (for testing)
type Store interface {
	FindByCode(ctx context.Context, code string) (*model.ShortURL, error)
	FindByOwner(ctx context.Context, owner string) ([]model.ShortURL, error)
	Insert(ctx context.Context, rec *model.ShortURL) error
	UpdateByCode(ctx context.Context, code string, changes model.ShortURLChanges) (*model.ShortURL, error)
	DeleteByCode(ctx context.Context, code string) error
	IncrementStats(ctx context.Context, code string, at time.Time) (*model.ShortURL, error)
}

// CodeGenerator produces candidate short codes
type CodeGenerator interface {
	NewCode(ctx context.Context) (string, error)
}

// RedisRepositoryInterface defines the Redis analytics operations (for testing)
type RedisRepositoryInterface interface {
	IncrementPV(ctx context.Context, code string) (int64, error)
	GetPV(ctx context.Context, code string) (int64, error)
	AddUV(ctx context.Context, code, visitorID string) (bool, error)
	GetUV(ctx context.Context, code string) (int64, error)
	AddSource(ctx context.Context, code, source string) error
	GetSources(ctx context.Context, code string) (map[string]int64, error)
}

// ClickRecorder applies or forwards the stats increment of one redirect
type ClickRecorder interface {
	RecordClick(ctx context.Context, code string) error
}

// URLLookup reads a record by code
type URLLookup interface {
	GetByCode(ctx context.Context, code string) (*model.ShortURL, error)
}

// ShortURLServiceInterface defines the registry operations used by the API
type ShortURLServiceInterface interface {
	GetByCode(ctx context.Context, code string) (*model.ShortURL, error)
	ListByOwner(ctx context.Context, owner string) ([]model.ShortURL, error)
	Create(ctx context.Context, in model.CreateInput) (*model.ShortURL, error)
	Update(ctx context.Context, in model.UpdateInput, requester string, isAdmin bool) (*model.ShortURL, error)
	Remove(ctx context.Context, code, requester string, isAdmin bool) (bool, error)
	IncrementStatsOnRedirect(ctx context.Context, code string) (*model.ShortURL, error)
}

// ResolverInterface defines the redirect resolution operations
type ResolverInterface interface {
	Resolve(ctx context.Context, code string) (*model.Resolution, error)
	Invalidate(code string)
}

// AnalyticsServiceInterface defines the analytics operations
type AnalyticsServiceInterface interface {
	RecordAccess(ctx context.Context, code, clientIP, userAgent, referer string) error
	GetStats(ctx context.Context, code string) (*model.Stats, error)
	GetAnalytics(ctx context.Context, code string) (*model.AnalyticsResponse, error)
}
