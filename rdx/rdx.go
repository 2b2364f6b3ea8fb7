// Package rdx wraps the Redis connection used as a best-effort token
// cache. Every helper degrades to an error the caller may log and
// ignore; no request depends on Redis being up.
package rdx

import (
	"os"

	"vibeholidays/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Connect builds the client from REDIS_URL, defaulting to a local
// instance like the rest of the stack.
func Connect() error {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379"
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	Conn = redis.NewClient(opts)
	return nil
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) error {
	return Conn.HDel(globals.Ctx, hash, field).Err()
}
