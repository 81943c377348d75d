package cart

import (
	"bytes"
	"context"
	"encoding/gob"

	"github.com/kitforge/order-service/internal/entities"
)

// Cache is the byte cache used for catalog entries.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// CachedCatalog wraps a ProductCatalog with a read-through cache. Only found
// products are cached; misses and errors always hit the source so a newly
// activated product is visible immediately.
type CachedCatalog struct {
	source ProductCatalog
	cache  Cache
}

func NewCachedCatalog(source ProductCatalog, cache Cache) *CachedCatalog {
	return &CachedCatalog{source: source, cache: cache}
}

func (c *CachedCatalog) GetProduct(ctx context.Context, sku string) (entities.Product, error) {
	key := "sku:" + sku
	if data, ok := c.cache.Get(key); ok {
		var product entities.Product
		if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&product); err == nil {
			return product, nil
		}
	}

	product, err := c.source.GetProduct(ctx, sku)
	if err != nil {
		return entities.Product{}, err
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(product); err == nil {
		c.cache.Set(key, buf.Bytes())
	}
	return product, nil
}
