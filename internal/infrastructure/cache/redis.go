// Package cache provides the profile cache that short-circuits repeat
// /auth/profile checks while a credential stays live.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

const connectTimeout = 5 * time.Second

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr string
	DB   int
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisProfileCache stores resolved sessions keyed by a digest of the bearer
// credential. The raw token never appears in Redis; the cached value holds
// the profile only, the token stays in the browser's cookie.
type RedisProfileCache struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisProfileCache wraps an established Redis client.
func NewRedisProfileCache(client *redis.Client, logger zerolog.Logger) *RedisProfileCache {
	return &RedisProfileCache{client: client, logger: logger.With().Str("component", "profile-cache").Logger()}
}

type cachedProfile struct {
	UserID   string      `json:"user_id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

func (c *RedisProfileCache) Get(ctx context.Context, token string) (*domain.Session, bool) {
	raw, err := c.client.Get(ctx, profileKey(token)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("cache get failed")
		}
		return nil, false
	}
	var p cachedProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false
	}
	return &domain.Session{
		UserID:   p.UserID,
		Username: p.Username,
		Email:    p.Email,
		Role:     p.Role,
		Token:    token,
	}, true
}

func (c *RedisProfileCache) Set(ctx context.Context, token string, sess *domain.Session, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	raw, err := json.Marshal(cachedProfile{
		UserID:   sess.UserID,
		Username: sess.Username,
		Email:    sess.Email,
		Role:     sess.Role,
	})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, profileKey(token), raw, ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("cache set failed")
	}
}

func (c *RedisProfileCache) Delete(ctx context.Context, token string) {
	if err := c.client.Del(ctx, profileKey(token)).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("cache delete failed")
	}
}

// Ping reports Redis connectivity for the readiness probe.
func (c *RedisProfileCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func profileKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "profile:" + hex.EncodeToString(sum[:])
}
