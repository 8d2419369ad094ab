package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"task-service/internal/config"
	"task-service/internal/domain/entities"
)

// RedisService caches user profiles for the /auth/me lookup. It is optional:
// when no Redis is reachable the client stays nil and every call degrades to
// a no-op cache miss.
type RedisService struct {
	client *redis.Client
}

func NewRedisService() *RedisService {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(context.Background()).Err(); err != nil {
				log.Printf("Warning: Redis connection failed with REDIS_URL: %v", err)
			} else {
				log.Printf("Connected to Redis using REDIS_URL")
				return &RedisService{client: client}
			}
		}
	}

	host := config.GetEnvAsString("REDIS_HOST", "localhost")
	port := config.GetEnvAsString("REDIS_PORT", "6379")

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       config.GetEnvAsInt("REDIS_DB", 0),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: Redis connection failed: %v. Profile caching is disabled.", err)
		return &RedisService{client: nil}
	}

	log.Printf("Connected to Redis at %s:%s", host, port)
	return &RedisService{client: client}
}

func (r *RedisService) SetProfile(ctx context.Context, userID string, user *entities.User, ttl time.Duration) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	userData, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, "profile:"+userID, userData, ttl).Err()
}

func (r *RedisService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	if r.client == nil {
		return nil, redis.Nil // Redis disabled, behave like a cache miss
	}
	userData, err := r.client.Get(ctx, "profile:"+userID).Result()
	if err != nil {
		return nil, err
	}

	var user entities.User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *RedisService) DeleteProfile(ctx context.Context, userID string) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Del(ctx, "profile:"+userID).Err()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Close()
}
