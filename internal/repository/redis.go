package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"linkgate/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes for click analytics
	PVKeyPrefix     = "lg:clicks:pv:"
	UVKeyPrefix     = "lg:clicks:uv:"
	SourceKeyPrefix = "lg:clicks:src:"
	// StatsRetention bounds how long daily analytics keys live
	StatsRetention = 7 * 24 * time.Hour

	dayLayout = "2006-01-02"
)

// RedisRepository keeps real-time click analytics in Redis.
// It complements the persisted click counter and is never authoritative.
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
	now    func() time.Time
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("addr", cfg.Addr).Msg("Failed to connect to Redis")
	} else {
		log.Info().Str("addr", cfg.Addr).Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
		now:    time.Now,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// IncrementPV increments the page view count of a code
func (r *RedisRepository) IncrementPV(ctx context.Context, code string) (int64, error) {
	key := r.pvKey(code)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, StatsRetention)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// GetPV returns the page view count of a code, zero when none was recorded
func (r *RedisRepository) GetPV(ctx context.Context, code string) (int64, error) {
	pv, err := r.client.Get(ctx, r.pvKey(code)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return pv, err
}

// AddUV records a visitor for today and reports whether it was new
func (r *RedisRepository) AddUV(ctx context.Context, code, visitorID string) (bool, error) {
	key := r.dailyUVKey(code, r.now())

	var added *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		added = pipe.SAdd(ctx, key, visitorID)
		pipe.Expire(ctx, key, StatsRetention)
		return nil
	})
	if err != nil {
		return false, err
	}
	return added.Val() > 0, nil
}

// GetUV returns the number of distinct visitors across the retained days
func (r *RedisRepository) GetUV(ctx context.Context, code string) (int64, error) {
	keys, err := r.scanKeys(ctx, r.uvKey(code)+":*")
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	members, err := r.client.SUnion(ctx, keys...).Result()
	if err != nil {
		return 0, err
	}
	return int64(len(members)), nil
}

// AddSource counts a visit from source for today
func (r *RedisRepository) AddSource(ctx context.Context, code, source string) error {
	key := r.sourceKey(code) + ":" + source + ":" + r.now().Format(dayLayout)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, StatsRetention)
		return nil
	})
	return err
}

// GetSources returns visit counts per source across the retained days
func (r *RedisRepository) GetSources(ctx context.Context, code string) (map[string]int64, error) {
	prefix := r.sourceKey(code) + ":"
	keys, err := r.scanKeys(ctx, prefix+"*")
	if err != nil {
		return nil, err
	}

	sources := make(map[string]int64, len(keys))
	for _, key := range keys {
		count, err := r.client.Get(ctx, key).Int64()
		if err != nil {
			continue
		}
		name := strings.TrimPrefix(key, prefix)
		if idx := strings.LastIndex(name, ":"); idx > 0 {
			name = name[:idx]
		}
		sources[name] += count
	}

	return sources, nil
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) scanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}

func (r *RedisRepository) pvKey(code string) string {
	return PVKeyPrefix + code
}

func (r *RedisRepository) uvKey(code string) string {
	return UVKeyPrefix + code
}

func (r *RedisRepository) dailyUVKey(code string, day time.Time) string {
	return r.uvKey(code) + ":" + day.Format(dayLayout)
}

func (r *RedisRepository) sourceKey(code string) string {
	return SourceKeyPrefix + code
}
