package infra_lookup_cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/moviefav/internal/model"
)

// Driver caches full catalog records under <key>:<title>.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) Set(title string, m model.Movie) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode movie: %w", err)
	}

	return d.client.Set(d.getFullKey(title), raw, d.ttl).Err()
}

// Get reports ok=false on a plain miss.
func (d *Driver) Get(title string) (model.Movie, bool, error) {
	raw, err := d.client.Get(d.getFullKey(title)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return model.Movie{}, false, nil
		}
		return model.Movie{}, false, err
	}

	var m model.Movie
	if err := json.Unmarshal(raw, &m); err != nil {
		return model.Movie{}, false, fmt.Errorf("failed to decode cached movie: %w", err)
	}
	return m, true, nil
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
