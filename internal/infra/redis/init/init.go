package infra_redis_init

import (
	"context"
	"log"
	"net"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/moviefav/internal/config"
)

const pingTimeout = 5 * time.Second

// MustEstablishConn connects the catalog lookup cache. The process stops if
// the cache was configured but does not answer.
func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	client := redis.NewClient(options(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.WithContext(ctx).Ping().Err(); err != nil {
		log.Fatalf("[redis] ping %s failed: %v", client.Options().Addr, err)
	}

	log.Printf("[redis] lookup cache at %s, entries live %s", client.Options().Addr, cfg.TTL)
	return client
}

func options(cfg config.RedisCache) *redis.Options {
	return &redis.Options{
		Addr:        net.JoinHostPort(cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DialTimeout: pingTimeout,
	}
}
