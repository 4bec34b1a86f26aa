package points

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	model "github.com/aksisonline/mockify/points/internal/models"
	redis "github.com/redis/go-redis/v9"
)

// TTL: баланс короткий, профиль длиннее. Кэш только локальная оптимизация,
// источник истины всегда Postgres.
const (
	balanceTTL = 30 * time.Second
	profileTTL = 5 * time.Minute
)

type CacheService struct {
	client *redis.Client
}

func NewCacheService() (serv *CacheService, err error) {

	// config
	addr := os.Getenv("POINTS_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env POINTS_CACHE_URL is not set")
	}
	user := os.Getenv("POINTS_CACHE_USER")
	if user == "" {
		return nil, fmt.Errorf("env POINTS_CACHE_USER is not set")
	}
	pwd := os.Getenv("POINTS_CACHE_PWD")
	if pwd == "" {
		return nil, fmt.Errorf("env POINTS_CACHE_PWD is not set")
	}
	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

func (c *CacheService) get(ctx context.Context, key string, dst any) error {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("not found")
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dst)
}

func (c *CacheService) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *CacheService) GetBalance(ctx context.Context, user string) (balance model.Balance, err error) {
	err = c.get(ctx, "balance:"+user, &balance)
	if err != nil {
		return model.Balance{}, err
	}
	return balance, nil
}

func (c *CacheService) SetBalance(ctx context.Context, user string, balance model.Balance) error {
	return c.set(ctx, "balance:"+user, balance, balanceTTL)
}

func (c *CacheService) InvalidateBalance(ctx context.Context, user string) error {
	return c.client.Del(ctx, "balance:"+user).Err()
}

func (c *CacheService) GetProfile(ctx context.Context, user string) (profile model.Profile, err error) {
	err = c.get(ctx, "profile:"+user, &profile)
	if err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

func (c *CacheService) SetProfile(ctx context.Context, user string, profile model.Profile) error {
	return c.set(ctx, "profile:"+user, profile, profileTTL)
}

func (c *CacheService) InvalidateProfile(ctx context.Context, user string) error {
	return c.client.Del(ctx, "profile:"+user).Err()
}
