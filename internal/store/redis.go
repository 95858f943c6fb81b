package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisTimeout = 2 * time.Second

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

// Redis stores overrides in Redis. Reads go to Redis first, so writes from
// other clients are seen. Every write is mirrored into a local layer; a key
// whose write did not reach Redis is served from that layer until a later
// write succeeds, and the layer also answers when a Redis read fails.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	local  *Memory
	logger *zap.Logger

	mu      sync.Mutex
	pending map[string]bool
}

func NewRedis(opts RedisOptions, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: redisTimeout,
	})
	local := NewMemory()
	local.ttl = opts.TTL
	return &Redis{
		client:  client,
		prefix:  opts.Prefix,
		ttl:     opts.TTL,
		local:   local,
		logger:  logger,
		pending: make(map[string]bool),
	}
}

func (r *Redis) key(entityID string) string {
	return Key(r.prefix, entityID)
}

func (r *Redis) Get(entityID string) (string, bool) {
	if r.isPending(entityID) {
		return r.local.Get(entityID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	v, err := r.client.Get(ctx, r.key(entityID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		r.logger.Warn("redis override lookup failed, using local layer", zap.String("entity_id", entityID), zap.Error(err))
		return r.local.Get(entityID)
	}
	return v, true
}

func (r *Redis) Set(entityID, optionID string) {
	r.local.Set(entityID, optionID)

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	err := r.client.Set(ctx, r.key(entityID), optionID, r.ttl).Err()
	r.setPending(entityID, err != nil)
	if err != nil {
		r.logger.Error("redis override write failed",
			zap.String("entity_id", entityID),
			zap.String("option_id", optionID),
			zap.Error(err),
		)
	}
}

func (r *Redis) isPending(entityID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending[entityID]
}

func (r *Redis) setPending(entityID string, pending bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pending {
		r.pending[entityID] = true
		return
	}
	delete(r.pending, entityID)
}

// Ping reports whether Redis is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
