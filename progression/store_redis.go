package progression

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type RedisStore struct {
	rdclient *redis.Client
}

func NewRedisStore(redisURL string, redisPW string, redisDB int) *RedisStore {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisStore{
		rdclient: rdclient,
	}
}

func progressionKey(playerID string) string {
	return fmt.Sprintf("progression|%s", playerID)
}

func (r *RedisStore) Load(ctx context.Context, playerID string) (*State, error) {
	data, err := r.rdclient.Get(ctx, progressionKey(playerID)).Result()
	if err == redis.Nil {
		return nil, &NotFoundError{PlayerID: playerID}
	} else if err != nil {
		return nil, err
	}
	state := &State{}
	if err := json.Unmarshal([]byte(data), state); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *RedisStore) Save(ctx context.Context, playerID string, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.rdclient.Set(ctx, progressionKey(playerID), data, 0).Err()
}
