package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const narrativeKeyPrefix = "narrative:"

// NarrativeCache guarda o texto gerado para um prompt
type NarrativeCache interface {
	Get(ctx context.Context, prompt string) (string, bool, error)
	Set(ctx context.Context, prompt, text string) error
}

type redisNarrativeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisNarrativeCache(client *redis.Client, ttl time.Duration) NarrativeCache {
	return &redisNarrativeCache{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient aceita tanto uma URL redis:// quanto um endereço host:porta
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "erro ao conectar no redis")
	}
	return client, nil
}

func (c *redisNarrativeCache) Get(ctx context.Context, prompt string) (string, bool, error) {
	text, err := c.client.Get(ctx, narrativeKey(prompt)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "erro ao ler narrativa do cache")
	}
	return text, true, nil
}

func (c *redisNarrativeCache) Set(ctx context.Context, prompt, text string) error {
	if err := c.client.Set(ctx, narrativeKey(prompt), text, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "erro ao gravar narrativa no cache")
	}
	return nil
}

func narrativeKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return narrativeKeyPrefix + hex.EncodeToString(sum[:])
}
