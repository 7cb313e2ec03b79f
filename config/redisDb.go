package config

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	rdb *redis.Client
)
var ctx = context.Background()

func GetRedisDB() *redis.Client {
	return rdb
}

func GetRedisContext() context.Context {
	return ctx
}

func GetRedisObject(key string, dest interface{}) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	val, err := rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	err = json.Unmarshal([]byte(val), &dest)
	if err != nil {
		return false, err
	}
	return true, nil
}

func SetRedisObject(key string, obj interface{}, exp time.Duration) error {
	if rdb == nil {
		return nil
	}
	objInByte, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	if err = rdb.Set(ctx, key, objInByte, exp).Err(); err != nil {
		return err
	}
	return nil
}

func RemoveRedisKey(keys ...string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}

// ConnectRedisWithRetry connects and sets the global redis client. Redis is
// optional here (persisted-query cache and project-access cache); the helpers
// above degrade to no-ops when it is absent.
func ConnectRedisWithRetry() {
	address := os.Getenv("REDIS_ADDRESS")
	if address == "" {
		log.Printf("REDIS_ADDRESS not set; running without redis")
		return
	}

	var attempt int
	for {
		attempt++
		client := redis.NewClient(&redis.Options{Addr: address})
		if err := client.Ping(ctx).Err(); err == nil {
			rdb = client
			log.Printf("connected to redis (attempt=%d)", attempt)
			return
		} else {
			sleep := time.Second * time.Duration(1<<min(attempt, 4))
			if sleep > 15*time.Second {
				sleep = 15 * time.Second
			}
			log.Printf("failed to connect redis (attempt=%d): %v; retrying in %s", attempt, err, sleep)
			time.Sleep(sleep)
		}
		if attempt >= 10 {
			log.Printf("giving up on redis after %d attempts; running without redis", attempt)
			return
		}
	}
}
