package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopexperts/rewards/internal/service"
)

type Config struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// ReferralCodeCache keeps the code generated for a user around for a session
// so repeated summary calls hand back the same string. Codes decode fine
// without it; a cold or broken cache only costs a re-encode.
type ReferralCodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReferralCodeCache(client *redis.Client, cfg Config) service.ReferralCodeCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &ReferralCodeCache{client: client, ttl: ttl}
}

func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func (c *ReferralCodeCache) Get(ctx context.Context, userID int64) (string, error) {
	code, err := c.client.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (c *ReferralCodeCache) Set(ctx context.Context, userID int64, code string) error {
	return c.client.Set(ctx, key(userID), code, c.ttl).Err()
}

func key(userID int64) string {
	return fmt.Sprintf("rewards:referral-code:%d", userID)
}
