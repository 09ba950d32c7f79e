package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tradeaskill/internal/config"
	"tradeaskill/internal/domain/skill"
	"tradeaskill/internal/pkg/metrics"
)

const (
	catalogCacheKey = "skills:catalog"
	catalogLockKey  = "skills:catalog:lock"
)

var ErrUpstream = errors.New("skills unavailable")

type SkillFetcher interface {
	FetchSkills(ctx context.Context) ([]skill.Record, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

type Result struct {
	Records  []skill.Record
	Fallback bool
	Cached   bool
}

type Source struct {
	fetcher SkillFetcher
	cache   Cache
	policy  string
	logger  *log.Logger

	lockWait time.Duration
}

// NewSource builds the skill data source. policy is config.FallbackStatic or
// config.FallbackError; anything else is treated as static. cache may be nil.
func NewSource(fetcher SkillFetcher, cache Cache, policy string, logger *log.Logger) *Source {
	if policy != config.FallbackError {
		policy = config.FallbackStatic
	}
	return &Source{fetcher: fetcher, cache: cache, policy: policy, logger: logger, lockWait: 300 * time.Millisecond}
}

func (s *Source) Policy() string {
	return s.policy
}

func (s *Source) Load(ctx context.Context) (Result, error) {
	if hit, ok := s.cached(ctx); ok {
		return Result{Records: hit, Cached: true}, nil
	}

	lockAcquired := false
	if s.cache != nil {
		ok, err := s.cache.SetIfNotExists(ctx, catalogLockKey, "1", 10*time.Second)
		switch {
		case err == nil && ok:
			lockAcquired = true
		case err == nil && !ok:
			// Another request is fetching; give it a moment to fill the cache.
			jitter := time.Duration(time.Now().UnixNano()%101) * time.Millisecond
			select {
			case <-time.After(s.lockWait + jitter):
			case <-ctx.Done():
				return Result{}, ctx.Err()
			}
			if hit, ok := s.cached(ctx); ok {
				return Result{Records: hit, Cached: true}, nil
			}
			s.logf("[Catalog] Lock wait fallback: %s", catalogLockKey)
		}
	}
	if lockAcquired {
		defer func() { _ = s.cache.Delete(context.WithoutCancel(ctx), catalogLockKey) }()
	}

	records, err := s.fetcher.FetchSkills(ctx)
	if err != nil {
		if s.policy == config.FallbackError {
			s.logf("[Catalog] Fetch failed, surfacing error: %v", err)
			return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		s.logf("[Catalog] Fetch failed, serving bundled catalog: %v", err)
		metrics.CatalogFallbacks.Inc()
		return Result{Records: skill.Bundled(), Fallback: true}, nil
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, catalogCacheKey, records, 0); err == nil {
			s.logf("[Catalog] Cache SET: %s", catalogCacheKey)
		}
	}
	return Result{Records: records}, nil
}

// Invalidate drops the cached catalog so the next Load refetches.
func (s *Source) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, catalogCacheKey)
}

func (s *Source) cached(ctx context.Context) ([]skill.Record, bool) {
	if s.cache == nil {
		return nil, false
	}
	var out []skill.Record
	hit, err := s.cache.GetJSON(ctx, catalogCacheKey, &out)
	if err != nil || !hit {
		return nil, false
	}
	s.logf("[Catalog] Cache HIT: %s", catalogCacheKey)
	return out, true
}

func (s *Source) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
