package redissvc

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisService bundles a redis client with the context it was wired up with,
// so consumers don't each carry both around.
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

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}
