package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"amazon-review-sentiment/internal/aggregate"
	"amazon-review-sentiment/internal/cache"
	"amazon-review-sentiment/internal/renderer"
	"amazon-review-sentiment/internal/scraper"
	"amazon-review-sentiment/internal/sentiment"
	"amazon-review-sentiment/internal/storage"
	"amazon-review-sentiment/internal/urls"
)

// Analyzer runs the review pipeline behind a cache-aside lookup: a cached
// report is returned as-is; a miss runs normalize → paginate → score →
// aggregate → persist and populates the cache.
type Analyzer struct {
	logger     *slog.Logger
	normalizer *urls.Normalizer
	renderers  renderer.Factory
	scraper    *scraper.Scraper
	sentiment  *sentiment.Analyzer
	persister  *storage.Persister
	cache      cache.Store
	cacheTTL   time.Duration
}

func NewAnalyzer(
	logger *slog.Logger,
	normalizer *urls.Normalizer,
	renderers renderer.Factory,
	scr *scraper.Scraper,
	analyzer *sentiment.Analyzer,
	persister *storage.Persister,
	cacheStore cache.Store,
	cacheTTL time.Duration,
) *Analyzer {
	return &Analyzer{
		logger:     logger,
		normalizer: normalizer,
		renderers:  renderers,
		scraper:    scr,
		sentiment:  analyzer,
		persister:  persister,
		cache:      cacheStore,
		cacheTTL:   cacheTTL,
	}
}

// Analyze produces the aggregate sentiment report for rawURL. The cache is
// keyed by the raw URL exactly as requested, so differently formatted URLs
// for the same product are cache-distinct.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*aggregate.Report, error) {
	if report := a.lookupCached(ctx, rawURL); report != nil {
		return report, nil
	}

	ref, err := a.normalizer.Resolve(rawURL)
	if err != nil {
		return nil, err
	}

	rend, err := a.renderers.New(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rend.Close(); err != nil {
			a.logger.Error("Failed to close renderer", "error", err.Error())
		}
	}()

	productHTML, err := rend.Render(ctx, ref.ProductURL)
	if err != nil {
		return nil, err
	}
	details, err := a.scraper.ExtractProductDetails(productHTML)
	if err != nil {
		return nil, err
	}

	reviews, err := a.scraper.Collect(ctx, rend, ref.ReviewListingURL)
	if err != nil {
		return nil, err
	}

	results := make([]sentiment.Result, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, a.sentiment.Analyze(review))
	}

	report := aggregate.BuildReport(ref.RawURL, details, results)
	if report.ReviewCount == 0 {
		a.logger.Info("Product has no reviews", "url", ref.ProductURL)
		return report, nil
	}

	artifact := &storage.Artifact{Report: *report, Reviews: reviews}
	report.ArtifactKey = a.persister.SaveAsync(artifact)

	a.populateCache(ctx, rawURL, report)

	a.logger.Info("Scrape completed",
		"url", ref.ProductURL,
		"reviews", report.ReviewCount,
		"artifact_key", report.ArtifactKey,
	)
	return report, nil
}

func (a *Analyzer) lookupCached(ctx context.Context, rawURL string) *aggregate.Report {
	cached, err := a.cache.Get(ctx, rawURL)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			a.logger.Warn("Cache lookup failed", "url", rawURL, "error", err.Error())
		}
		return nil
	}

	var report aggregate.Report
	if err := json.Unmarshal([]byte(cached), &report); err != nil {
		a.logger.Warn("Discarding undecodable cache entry", "url", rawURL, "error", err.Error())
		return nil
	}

	a.logger.Info("Cache hit", "url", rawURL)
	return &report
}

func (a *Analyzer) populateCache(ctx context.Context, rawURL string, report *aggregate.Report) {
	payload, err := json.Marshal(report)
	if err != nil {
		a.logger.Warn("Failed to serialize report for cache", "url", rawURL, "error", err.Error())
		return
	}
	if err := a.cache.SetWithExpiry(ctx, rawURL, string(payload), a.cacheTTL); err != nil {
		a.logger.Warn("Failed to populate cache", "url", rawURL, "error", err.Error())
	}
}
