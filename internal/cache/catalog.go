package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	catalogKey = "salon:catalog:services"
	catalogTTL = 5 * time.Minute
)

// Catalog guarda o JSON do catálogo público de serviços no Redis.
// Sem REDIS_URL configurado vira no-op: a API nunca depende do cache.
type Catalog struct {
	rdb *redis.Client
}

func NewCatalog(redisURL string) *Catalog {
	if redisURL == "" {
		return &Catalog{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, catalog cache disabled: %v", err)
		return &Catalog{}
	}

	return &Catalog{rdb: redis.NewClient(opts)}
}

func (c *Catalog) GetServices(ctx context.Context) ([]byte, bool) {
	if c.rdb == nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *Catalog) SetServices(ctx context.Context, payload []byte) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Set(ctx, catalogKey, payload, catalogTTL).Err(); err != nil {
		log.Println("catalog cache set error:", err)
	}
}

// Invalidate derruba o catálogo após criação/alteração/remoção de
// serviço.
func (c *Catalog) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		log.Println("catalog cache invalidate error:", err)
	}
}
