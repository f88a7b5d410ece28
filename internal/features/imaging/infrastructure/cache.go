package infrastructure

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

// ImageCache maps product URLs to resolved image URLs. Entries do not expire.
type ImageCache interface {
	Get(ctx context.Context, productURL string) (string, bool)
	Set(ctx context.Context, productURL, imageURL string) error
	Delete(ctx context.Context, productURL string) error
	Clear(ctx context.Context) error
}

type ristrettoImageCache struct {
	client *ristretto.Cache
	cache  *cache.Cache[string]
}

// NewImageCache creates an in-process ImageCache on a ristretto store.
func NewImageCache() (ImageCache, error) {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 26,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}

	return &ristrettoImageCache{
		client: client,
		cache:  cache.New[string](ristretto_store.NewRistretto(client)),
	}, nil
}

func (c *ristrettoImageCache) Get(ctx context.Context, productURL string) (string, bool) {
	imageURL, err := c.cache.Get(ctx, productURL)
	if err != nil || imageURL == "" {
		return "", false
	}
	return imageURL, true
}

// Set blocks until ristretto has applied the write so the next Get sees it.
func (c *ristrettoImageCache) Set(ctx context.Context, productURL, imageURL string) error {
	if err := c.cache.Set(ctx, productURL, imageURL); err != nil {
		return fmt.Errorf("failed to cache image for %s: %w", productURL, err)
	}
	c.client.Wait()
	return nil
}

func (c *ristrettoImageCache) Delete(ctx context.Context, productURL string) error {
	if err := c.cache.Delete(ctx, productURL); err != nil {
		return fmt.Errorf("failed to evict %s: %w", productURL, err)
	}
	c.client.Wait()
	return nil
}

func (c *ristrettoImageCache) Clear(ctx context.Context) error {
	if err := c.cache.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear image cache: %w", err)
	}
	return nil
}
