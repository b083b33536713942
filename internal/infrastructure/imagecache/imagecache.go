package imagecache

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dgraph-io/ristretto"
)

// Cache loads logo images by URL and keeps the decoded bytes in an
// in-process ristretto cache. State-machine consumers never wait on it; it
// exists purely for the presentation side.
type Cache struct {
	cache  *ristretto.Cache
	client *http.Client
}

func New(maxBytes int64, client *http.Client) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1000,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create image cache failed: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Cache{cache: c, client: client}, nil
}

// Load returns the image bytes for url, fetching and caching on a miss.
func (c *Cache) Load(ctx context.Context, url string) ([]byte, error) {
	if v, ok := c.cache.Get(url); ok {
		if data, ok := v.([]byte); ok {
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}

	c.cache.Set(url, data, int64(len(data)))
	return data, nil
}

// Wait blocks until pending cache writes are applied. Intended for tests.
func (c *Cache) Wait() { c.cache.Wait() }

func (c *Cache) Close() { c.cache.Close() }
