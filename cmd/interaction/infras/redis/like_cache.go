package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// 计数缓存 Key：like:count:{target_kind}:{target_id}
const likeCountKeyTemplate = "like:count:%s:%d"

const likeCountTTL = 10 * time.Minute

// LikeCountCache is a read-through cache for like counts. Every error is
// treated as a miss; the store stays the source of truth.
type LikeCountCache struct {
	client *redis.Client
}

func NewLikeCountCache(client *redis.Client) *LikeCountCache {
	return &LikeCountCache{client: client}
}

func NewClient(addr, password string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Warnf("redis ping failed: %v", err)
	}
	return client
}

func likeCountKey(targetKind string, targetId int64) string {
	return fmt.Sprintf(likeCountKeyTemplate, targetKind, targetId)
}

func (c *LikeCountCache) Get(ctx context.Context, targetKind string, targetId int64) (int64, bool) {
	count, err := c.client.Get(ctx, likeCountKey(targetKind, targetId)).Int64()
	if err != nil {
		return 0, false
	}
	return count, true
}

func (c *LikeCountCache) Set(ctx context.Context, targetKind string, targetId, count int64) {
	if err := c.client.Set(ctx, likeCountKey(targetKind, targetId), count, likeCountTTL).Err(); err != nil {
		logrus.Warnf("set like count cache failed: %v", err)
	}
}

func (c *LikeCountCache) Invalidate(ctx context.Context, targetKind string, targetId int64) {
	if err := c.client.Del(ctx, likeCountKey(targetKind, targetId)).Err(); err != nil {
		logrus.Warnf("invalidate like count cache failed: %v", err)
	}
}
