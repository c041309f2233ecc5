package redissvc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

// Connect dials addr and checks the server answers.
func Connect(ctx context.Context, addr string) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}
	return NewRedisService(rdb, ctx), nil
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Ctx() context.Context {
	return a.ctx
}

// PushJSON appends v, JSON encoded, to the list at key.
func (a *RedisService) PushJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s entry: %w", key, err)
	}
	return a.rdb.RPush(a.ctx, key, data).Err()
}

// DrainList returns every element of the list at key and deletes the key
// in one MULTI/EXEC.
func (a *RedisService) DrainList(key string) ([]string, error) {
	var lrange *redis.StringSliceCmd
	_, err := a.rdb.TxPipelined(a.ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(a.ctx, key, 0, -1)
		pipe.Del(a.ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lrange.Val(), nil
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
