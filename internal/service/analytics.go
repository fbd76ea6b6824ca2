package service

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	"linkgate/internal/model"
	"linkgate/pkg/util"

	"github.com/rs/zerolog/log"
)

// TopSourcesLimit caps the sources returned by GetAnalytics
const TopSourcesLimit = 10

// knownSources maps referer host fragments to a source name
var knownSources = []struct {
	fragment string
	name     string
}{
	{"google", "google"},
	{"bing", "bing"},
	{"duckduckgo", "duckduckgo"},
	{"facebook", "facebook"},
	{"t.co", "twitter"},
	{"twitter", "twitter"},
	{"linkedin", "linkedin"},
	{"reddit", "reddit"},
}

// AnalyticsService keeps real-time click analytics alongside the persisted counter
type AnalyticsService struct {
	redisRepo RedisRepositoryInterface
}

// NewAnalyticsService creates a new Analytics Service
func NewAnalyticsService(redisRepo RedisRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{
		redisRepo: redisRepo,
	}
}

// RecordAccess records a single redirect. Failures are logged per counter
// and never reported to the caller.
func (as *AnalyticsService) RecordAccess(ctx context.Context, code, clientIP, userAgent, referer string) error {
	if _, err := as.redisRepo.IncrementPV(ctx, code); err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to increment PV")
	}

	visitorID := util.VisitorID(time.Now().UTC().Format("2006-01-02"), clientIP, userAgent)
	if _, err := as.redisRepo.AddUV(ctx, code, visitorID); err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to add UV")
	}

	source := extractSource(referer)
	if err := as.redisRepo.AddSource(ctx, code, source); err != nil {
		log.Error().Err(err).Str("code", code).Str("source", source).Msg("Failed to add source")
	}

	return nil
}

// GetStats returns PV and UV statistics for a code
func (as *AnalyticsService) GetStats(ctx context.Context, code string) (*model.Stats, error) {
	pv, err := as.redisRepo.GetPV(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to get PV")
		pv = 0
	}

	uv, err := as.redisRepo.GetUV(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to get UV")
		uv = 0
	}

	return &model.Stats{PV: pv, UV: uv}, nil
}

// GetAnalytics returns detailed analytics for a code
func (as *AnalyticsService) GetAnalytics(ctx context.Context, code string) (*model.AnalyticsResponse, error) {
	stats, err := as.GetStats(ctx, code)
	if err != nil {
		return nil, err
	}

	sources, err := as.redisRepo.GetSources(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to get sources")
		sources = map[string]int64{}
	}

	return &model.AnalyticsResponse{
		Code:       code,
		PV:         stats.PV,
		UV:         stats.UV,
		TopSources: topSources(sources, TopSourcesLimit),
	}, nil
}

// extractSource reduces a referer to a short source name
func extractSource(referer string) string {
	if referer == "" {
		return "direct"
	}

	u, err := url.Parse(referer)
	if err != nil || u.Host == "" {
		return "unknown"
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	for _, known := range knownSources {
		if host == known.fragment || strings.Contains(host, known.fragment+".") {
			return known.name
		}
	}

	parts := strings.Split(host, ".")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return host
}

// topSources returns the limit highest counts, ties broken by name
func topSources(sources map[string]int64, limit int) []model.SourceStat {
	stats := make([]model.SourceStat, 0, len(sources))
	for source, count := range sources {
		stats = append(stats, model.SourceStat{Source: source, Count: count})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Source < stats[j].Source
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
