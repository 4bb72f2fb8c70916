package rdx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects the shared redis client. Redis is optional: when addr is
// empty the client stays nil and every helper degrades to a no-op.
func Init(ctx context.Context, addr, password string) error {
	if addr == "" {
		return nil
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return Conn.Ping(ctx).Err()
}

// RevokeToken marks a token id as logged out until its natural expiry.
func RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if Conn == nil || tokenID == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return Conn.Set(ctx, "revoked:"+tokenID, "1", ttl).Err()
}

func IsTokenRevoked(ctx context.Context, tokenID string) bool {
	if Conn == nil || tokenID == "" {
		return false
	}
	n, err := Conn.Exists(ctx, "revoked:"+tokenID).Result()
	return err == nil && n > 0
}

// CacheShortLink stores a short-link code -> recipe id mapping so redirects
// skip the recipe collection on the hot path.
func CacheShortLink(ctx context.Context, code, recipeID string) {
	if Conn == nil {
		return
	}
	Conn.Set(ctx, "shortlink:"+code, recipeID, 0)
}

func LookupShortLink(ctx context.Context, code string) string {
	if Conn == nil {
		return ""
	}
	id, err := Conn.Get(ctx, "shortlink:"+code).Result()
	if err != nil {
		return ""
	}
	return id
}
