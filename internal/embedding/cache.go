package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"github.com/redis/go-redis/v9"
)

// redisStore is the subset of the redis client the cache needs.
type redisStore interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type cachedProvider struct {
	inner  Provider
	store  redisStore
	ttl    time.Duration
	logger logger.Logger
	closer func() error
}

// ConnectRedis parses url and pings the server.
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

// Cached memoizes inner's vectors in redis. Cache failures are logged and
// bypassed.
func Cached(inner Provider, client *redis.Client, ttl time.Duration, log logger.Logger) Provider {
	c := newCached(inner, client, ttl, log)
	c.closer = client.Close
	return c
}

func newCached(inner Provider, store redisStore, ttl time.Duration, log logger.Logger) *cachedProvider {
	return &cachedProvider{inner: inner, store: store, ttl: ttl, logger: log}
}

func (c *cachedProvider) Name() string { return c.inner.Name() }

func (c *cachedProvider) key(sentence string) string {
	sum := sha256.Sum256([]byte(sentence))
	return "emb:" + c.inner.Name() + ":" + hex.EncodeToString(sum[:])
}

func (c *cachedProvider) Embed(ctx context.Context, sentences []string) ([][]float32, error) {
	if len(sentences) == 0 {
		return [][]float32{}, nil
	}

	keys := make([]string, len(sentences))
	for i, s := range sentences {
		keys[i] = c.key(s)
	}

	out := make([][]float32, len(sentences))
	var missing []int

	values, err := c.store.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warn(ctx, "Embedding cache lookup failed: %v", err)
		values = nil
	}
	for i := range sentences {
		if i < len(values) {
			if raw, ok := values[i].(string); ok {
				if vec, err := decodeVector([]byte(raw)); err == nil {
					out[i] = vec
					continue
				}
			}
		}
		missing = append(missing, i)
	}

	if len(missing) == 0 {
		c.logger.Debug(ctx, "Embedding cache hit for all %d sentences", len(sentences))
		return out, nil
	}

	texts := make([]string, len(missing))
	for j, i := range missing {
		texts[j] = sentences[i]
	}

	vectors, err := c.inner.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embed cache misses: got %d vectors for %d inputs", len(vectors), len(texts))
	}

	for j, i := range missing {
		out[i] = vectors[j]
		if err := c.store.Set(ctx, keys[i], encodeVector(vectors[j]), c.ttl).Err(); err != nil {
			c.logger.Warn(ctx, "Embedding cache write failed: %v", err)
		}
	}

	c.logger.Debug(ctx, "Embedding cache: %d hits, %d misses", len(sentences)-len(missing), len(missing))
	return out, nil
}

func (c *cachedProvider) Close() error {
	err := Close(c.inner)
	if c.closer != nil {
		if cerr := c.closer(); err == nil {
			err = cerr
		}
	}
	return err
}

// encodeVector stores v as little-endian float32 bytes.
func encodeVector(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(x))
	}
	return buf
}

func decodeVector(buf []byte) ([]float32, error) {
	if len(buf) == 0 || len(buf)%4 != 0 {
		return nil, fmt.Errorf("invalid vector length %d", len(buf))
	}
	v := make([]float32, len(buf)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return v, nil
}
