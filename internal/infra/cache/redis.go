package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/sitekit-io/sitekit/internal/config"
)

func New(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func RegisterOpenTelemetryPlugin(rdb *redis.Client) error {
	return redisotel.InstrumentTracing(rdb)
}

// SiteRevisions keeps a per-project counter that moves on every record
// write, so rendered sites can tell when their content went stale.
type SiteRevisions struct {
	rdb *redis.Client
}

func NewSiteRevisions(rdb *redis.Client) *SiteRevisions {
	return &SiteRevisions{rdb: rdb}
}

func revisionKey(projectID uuid.UUID) string {
	return "site:rev:" + projectID.String()
}

func (s *SiteRevisions) Bump(ctx context.Context, projectID uuid.UUID) (int64, error) {
	return s.rdb.Incr(ctx, revisionKey(projectID)).Result()
}

func (s *SiteRevisions) Current(ctx context.Context, projectID uuid.UUID) (int64, error) {
	n, err := s.rdb.Get(ctx, revisionKey(projectID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
