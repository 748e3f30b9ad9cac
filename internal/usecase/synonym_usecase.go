package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"jobquery/internal/llm"
	"jobquery/internal/search"

	"github.com/charmbracelet/log"
)

// SynonymSource is a lookup consulted before the generator, such as the
// in-memory table or the role_synonyms repository.
type SynonymSource interface {
	Find(ctx context.Context, title string) ([]string, bool, error)
}

type SynonymOptions struct {
	TTL   time.Duration
	Count int
	Clean search.CleanOptions
}

type Resolver interface {
	Resolve(ctx context.Context, title string) ([]string, error)
}

type SynonymResolver struct {
	cache     SynonymCache
	sources   []SynonymSource
	generator llm.Provider
	opts      SynonymOptions
	logger    *log.Logger
}

func NewSynonymResolver(cache SynonymCache, sources []SynonymSource, generator llm.Provider, opts SynonymOptions, logger *log.Logger) *SynonymResolver {
	if opts.Count <= 0 {
		opts.Count = llm.DefaultSynonymCount
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SynonymResolver{
		cache:     cache,
		sources:   sources,
		generator: generator,
		opts:      opts,
		logger:    logger,
	}
}

// Resolve returns alternate titles for title. Lookup order is cache, then
// each source, then the generator. Successful results are cached, including
// an empty list; generation failures are not. The returned slice is never
// nil, even when err is non-nil.
func (r *SynonymResolver) Resolve(ctx context.Context, title string) ([]string, error) {
	title = search.QueryTitle(title)
	key := search.NormalizeTitle(title)
	if key == "" {
		return []string{}, ErrInvalidInput
	}
	cacheKey := SynonymsCacheKey(key)

	if r.cache != nil {
		var cached []string
		hit, err := r.cache.GetJSON(ctx, cacheKey, &cached)
		switch {
		case err != nil:
			r.logger.Warn("[Synonyms] cache read failed, treating as miss", "key", cacheKey, "err", err)
		case hit:
			r.logger.Debug("[Synonyms] Cache HIT", "key", cacheKey)
			if cached == nil {
				cached = []string{}
			}
			return cached, nil
		default:
			r.logger.Debug("[Synonyms] Cache MISS", "key", cacheKey)
		}
	}

	for _, src := range r.sources {
		if src == nil {
			continue
		}
		found, ok, err := src.Find(ctx, key)
		if err != nil {
			r.logger.Warn("[Synonyms] source lookup failed", "title", key, "err", err)
			continue
		}
		if ok {
			r.store(ctx, cacheKey, found)
			return found, nil
		}
	}

	if r.generator == nil {
		return []string{}, nil
	}

	prompt := llm.SynonymPrompt(title, r.opts.Count)
	raw, err := r.generator.Complete(ctx, prompt)
	if errors.Is(err, llm.ErrNotConfigured) {
		r.logger.Debug("[Synonyms] generation disabled", "title", key)
		return []string{}, nil
	}
	if err != nil {
		r.logger.Error("[LLM] synonym generation failed", "title", key, "err", err)
		return []string{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	cleaned := search.CleanCandidates(raw, title, r.opts.Clean)
	if cleaned == nil {
		cleaned = []string{}
	}
	r.store(ctx, cacheKey, cleaned)
	return cleaned, nil
}

func (r *SynonymResolver) store(ctx context.Context, key string, value []string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.SetJSON(ctx, key, value, r.opts.TTL); err != nil {
		r.logger.Warn("[Synonyms] cache write failed", "key", key, "err", err)
		return
	}
	r.logger.Debug("[Synonyms] Cache SET", "key", key, "count", len(value))
}
