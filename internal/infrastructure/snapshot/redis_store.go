package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"marketflow/internal/application"
	"marketflow/internal/domain"
)

const redisOpTimeout = 2 * time.Second

// RedisStore keeps the snapshot under a single Redis key for environments
// without durable local disk. A SET of the whole document gives the same
// wholesale-replace semantics as the atomic file rename.
type RedisStore struct {
	Client *redis.Client
	Key    string
	log    *zap.Logger
}

var _ application.SnapshotStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, key string, log *zap.Logger) *RedisStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisStore{Client: client, Key: key, log: log}
}

func (s *RedisStore) Save(exchanges []domain.Exchange) {
	data, err := json.Marshal(exchanges)
	if err != nil {
		s.log.Warn("snapshot marshal failed", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := s.Client.Set(ctx, s.Key, data, 0).Err(); err != nil {
		s.log.Warn("snapshot redis set failed", zap.Error(err))
	}
}

func (s *RedisStore) Load() ([]domain.Exchange, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	data, err := s.Client.Get(ctx, s.Key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("snapshot redis get failed", zap.Error(err))
		}
		return nil, false
	}
	var exchanges []domain.Exchange
	if err := json.Unmarshal(data, &exchanges); err != nil {
		s.log.Warn("snapshot unmarshal failed", zap.Error(err))
		return nil, false
	}
	return exchanges, true
}

func (s *RedisStore) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := s.Client.Del(ctx, s.Key).Err(); err != nil {
		s.log.Warn("snapshot redis del failed", zap.Error(err))
	}
}
