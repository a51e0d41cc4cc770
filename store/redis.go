package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	emotioncalc "github.com/affectkit/emotioncalc-go"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the interaction history as one JSON array under a
// single key, preserving the file store's whole-history
// read-modify-write contract. Suitable when several hosts share a
// deployment but still only one learner writes at a time.
type RedisStore struct {
	client *redis.Client
	key    string
	ctx    context.Context
}

// RedisConfig configures the Redis store.
type RedisConfig struct {
	Addr string // host:port
	Key  string // storage key, default "emotioncalc:history"
	DB   int
}

// NewRedisStore connects a store to Redis.
func NewRedisStore(cfg RedisConfig) *RedisStore {
	key := cfg.Key
	if key == "" {
		key = "emotioncalc:history"
	}
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB}),
		key:    key,
		ctx:    context.Background(),
	}
}

// NewRedisStoreWithClient wraps an existing client (used by tests).
func NewRedisStoreWithClient(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = "emotioncalc:history"
	}
	return &RedisStore{client: client, key: key, ctx: context.Background()}
}

func (s *RedisStore) Load() ([]emotioncalc.Interaction, error) {
	data, err := s.client.Get(s.ctx, s.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	var history []emotioncalc.Interaction
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		log.Printf("[Store] corrupted history under %s, starting empty: %v", s.key, err)
		return nil, nil
	}
	return history, nil
}

func (s *RedisStore) Save(history []emotioncalc.Interaction) error {
	if history == nil {
		history = []emotioncalc.Interaction{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := s.client.Set(s.ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
