package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/resumee-hq/resumee-api/internal/application/usecase/publish"
)

const (
	activeDocumentKey = "resumee:active:document"
	viewCounterPrefix = "resumee:views:"
)

// activeDocumentTTL is short on purpose: the document carries a random
// portfolio image pick and a days-based experience figure, neither of
// which should be frozen for long.
const activeDocumentTTL = 60 * time.Second

// RedisDocumentCache caches the rendered active-résumé document and
// keeps the public page view counters.
type RedisDocumentCache struct {
	client *redis.Client
}

func NewRedisDocumentCache(client *redis.Client) *RedisDocumentCache {
	return &RedisDocumentCache{client: client}
}

func (c *RedisDocumentCache) GetActiveDocument(ctx context.Context) (*publish.ResumeDocument, error) {
	raw, err := c.client.Get(ctx, activeDocumentKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read active document from redis failed: %w", err)
	}
	var doc publish.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode cached active document failed: %w", err)
	}
	return &doc, nil
}

func (c *RedisDocumentCache) SetActiveDocument(ctx context.Context, doc *publish.ResumeDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode active document failed: %w", err)
	}
	return c.client.Set(ctx, activeDocumentKey, raw, activeDocumentTTL).Err()
}

func (c *RedisDocumentCache) InvalidateActiveDocument(ctx context.Context) error {
	return c.client.Del(ctx, activeDocumentKey).Err()
}

// IncrementViews bumps the counter of one public page, fed by the
// view-events worker.
func (c *RedisDocumentCache) IncrementViews(ctx context.Context, page string) error {
	return c.client.Incr(ctx, viewCounterPrefix+page).Err()
}

func (c *RedisDocumentCache) Views(ctx context.Context, page string) (int64, error) {
	n, err := c.client.Get(ctx, viewCounterPrefix+page).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
