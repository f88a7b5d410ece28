package application

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"fashion-advisor/backend/internal/features/imaging/domain"
	"fashion-advisor/backend/internal/features/imaging/infrastructure"
	"fashion-advisor/backend/internal/metrics"
)

var tracer = otel.Tracer("fashion-advisor/imaging")

// ImageResolver turns product URLs into displayable image URLs. It never
// substitutes a placeholder itself; failures are reported in the Result.
type ImageResolver interface {
	Resolve(ctx context.Context, productURL string) domain.Result
	ResolveAll(ctx context.Context, productURLs []string) map[string]domain.Result
	ClearCache(ctx context.Context) error
	Evict(ctx context.Context, productURL string) error
}

type imageResolver struct {
	cache     infrastructure.ImageCache
	fetcher   infrastructure.PageFetcher
	extractor infrastructure.MetadataExtractor
	logger    *zap.Logger
}

// NewImageResolver creates a new ImageResolver.
func NewImageResolver(cache infrastructure.ImageCache, fetcher infrastructure.PageFetcher, extractor infrastructure.MetadataExtractor, logger *zap.Logger) ImageResolver {
	return &imageResolver{
		cache:     cache,
		fetcher:   fetcher,
		extractor: extractor,
		logger:    logger,
	}
}

// Resolve tries the cache, then the vendor rules, then the page metadata.
func (r *imageResolver) Resolve(ctx context.Context, productURL string) domain.Result {
	ctx, span := tracer.Start(ctx, "imaging.Resolve",
		trace.WithAttributes(attribute.String("product_url", productURL)))
	defer span.End()

	result := r.resolve(ctx, productURL)

	source, outcome := string(result.Source), "success"
	if !result.Success {
		source, outcome = "none", "failure"
		span.RecordError(result.Err)
		r.logger.Warn("image resolution failed", zap.String("product_url", productURL), zap.Error(result.Err))
	}
	metrics.ImageResolutions.WithLabelValues(source, outcome).Inc()
	return result
}

func (r *imageResolver) resolve(ctx context.Context, productURL string) domain.Result {
	if cached, ok := r.cache.Get(ctx, productURL); ok {
		return domain.Resolved(cached, domain.SourceCache)
	}

	if imageURL, ok := vendorImage(productURL); ok {
		r.store(ctx, productURL, imageURL)
		return domain.Resolved(imageURL, domain.SourceVendor)
	}

	html, err := r.fetcher.Fetch(ctx, productURL)
	if err != nil {
		return domain.Failed(fmt.Errorf("%w: %v", domain.ErrImageResolution, err))
	}

	imageURL, ok := r.extractor.ExtractImage(html)
	if !ok {
		return domain.Failed(fmt.Errorf("%w: no image found on %s", domain.ErrImageResolution, productURL))
	}
	imageURL = absolute(productURL, imageURL)

	r.store(ctx, productURL, imageURL)
	return domain.Resolved(imageURL, domain.SourcePage)
}

// store logs instead of failing: a lost cache write only costs a later refetch.
func (r *imageResolver) store(ctx context.Context, productURL, imageURL string) {
	if err := r.cache.Set(ctx, productURL, imageURL); err != nil {
		r.logger.Debug("image cache write dropped", zap.String("product_url", productURL), zap.Error(err))
	}
}

// ResolveAll resolves every distinct URL concurrently. One failure does not
// affect the others.
func (r *imageResolver) ResolveAll(ctx context.Context, productURLs []string) map[string]domain.Result {
	results := make(map[string]domain.Result, len(productURLs))
	seen := make(map[string]struct{}, len(productURLs))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, productURL := range productURLs {
		if _, ok := seen[productURL]; ok {
			continue
		}
		seen[productURL] = struct{}{}

		wg.Add(1)
		go func(productURL string) {
			defer wg.Done()
			result := r.Resolve(ctx, productURL)

			mu.Lock()
			results[productURL] = result
			mu.Unlock()
		}(productURL)
	}

	wg.Wait()
	return results
}

func (r *imageResolver) ClearCache(ctx context.Context) error {
	return r.cache.Clear(ctx)
}

func (r *imageResolver) Evict(ctx context.Context, productURL string) error {
	return r.cache.Delete(ctx, productURL)
}

// absolute resolves a relative image reference against the page it came from.
func absolute(pageURL, imageURL string) string {
	ref, err := url.Parse(imageURL)
	if err != nil || ref.IsAbs() {
		return imageURL
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return imageURL
	}
	return base.ResolveReference(ref).String()
}
