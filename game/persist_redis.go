package game

import (
	"context"

	"github.com/go-redis/redis/v8"
)

type RedisSessionStore struct {
	rdclient *redis.Client
}

func NewRedisSessionStore(redisURL string, redisPW string, redisDB int) *RedisSessionStore {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisSessionStore{
		rdclient: rdclient,
	}
}

func (r *RedisSessionStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	data, err := r.rdclient.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, &SessionNotFoundError{SessionID: sessionID}
	} else if err != nil {
		return nil, err
	}
	return decodeSession(sessionID, data)
}

func (r *RedisSessionStore) Save(ctx context.Context, sessionID string, state *Session) error {
	data, err := encodeSession(state)
	if err != nil {
		return err
	}
	return r.rdclient.Set(ctx, sessionKey(sessionID), data, 0).Err()
}

func (r *RedisSessionStore) Remove(ctx context.Context, sessionID string) error {
	return r.rdclient.Del(ctx, sessionKey(sessionID)).Err()
}
