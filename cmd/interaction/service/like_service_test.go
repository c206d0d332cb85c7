package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLikeStore mimics the likes table, including the composite unique key
// that absorbs duplicate inserts.
type fakeLikeStore struct {
	mu       sync.Mutex
	videos   map[int64]bool
	comments map[int64]bool
	likes    map[[3]int64]*model.Like
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{
		videos:   make(map[int64]bool),
		comments: make(map[int64]bool),
		likes:    make(map[[3]int64]*model.Like),
	}
}

func likeKey(videoId, commentId, userId int64) [3]int64 {
	return [3]int64{videoId, commentId, userId}
}

func (f *fakeLikeStore) VideoExists(_ context.Context, videoId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.videos[videoId], nil
}

func (f *fakeLikeStore) CommentExists(_ context.Context, commentId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.comments[commentId], nil
}

func (f *fakeLikeStore) RemoveLike(_ context.Context, videoId, commentId, userId int64) (*model.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey(videoId, commentId, userId)
	like, ok := f.likes[key]
	if !ok {
		return nil, nil
	}
	delete(f.likes, key)
	return like, nil
}

func (f *fakeLikeStore) AddLike(_ context.Context, like *model.Like) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey(like.VideoId, like.CommentId, like.UserId)
	if _, ok := f.likes[key]; ok {
		return false, nil
	}
	f.likes[key] = like
	return true, nil
}

func (f *fakeLikeStore) CountVideoLikes(_ context.Context, videoId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, l := range f.likes {
		if l.VideoId == videoId {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeStore) CountCommentLikes(_ context.Context, commentId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, l := range f.likes {
		if l.CommentId == commentId {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeStore) pairCount(videoId, commentId, userId int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for key := range f.likes {
		if key == likeKey(videoId, commentId, userId) {
			n++
		}
	}
	return n
}

type fakeCountCache struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeCountCache() *fakeCountCache {
	return &fakeCountCache{counts: make(map[string]int64)}
}

func cacheKey(kind string, id int64) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

func (c *fakeCountCache) Get(_ context.Context, kind string, id int64) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.counts[cacheKey(kind, id)]
	return count, ok
}

func (c *fakeCountCache) Set(_ context.Context, kind string, id, count int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[cacheKey(kind, id)] = count
}

func (c *fakeCountCache) Invalidate(_ context.Context, kind string, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, cacheKey(kind, id))
}

func TestToggleLikeParity(t *testing.T) {
	ctx := context.Background()
	store := newFakeLikeStore()
	store.videos[100] = true
	svc := NewLikeService(store, nil)

	for i := 1; i <= 5; i++ {
		res, err := svc.ToggleLike(ctx, 100, 0, 7)
		require.NoError(t, err)
		if i%2 == 1 {
			assert.Equal(t, StateLiked, res.State)
			require.NotNil(t, res.Like)
			assert.Equal(t, int64(100), res.Like.VideoId)
			assert.Equal(t, 1, store.pairCount(100, 0, 7))
		} else {
			assert.Equal(t, StateUnliked, res.State)
			require.NotNil(t, res.Like)
			assert.Equal(t, 0, store.pairCount(100, 0, 7))
		}
	}
}

func TestToggleLikeCommentTarget(t *testing.T) {
	ctx := context.Background()
	store := newFakeLikeStore()
	store.comments[42] = true
	svc := NewLikeService(store, nil)

	res, err := svc.ToggleLike(ctx, 0, 42, 7)
	require.NoError(t, err)
	assert.Equal(t, StateLiked, res.State)
	assert.Equal(t, int64(42), res.Like.CommentId)
	assert.Equal(t, int64(0), res.Like.VideoId)
}

func TestToggleLikeValidation(t *testing.T) {
	ctx := context.Background()
	store := newFakeLikeStore()
	store.videos[100] = true
	svc := NewLikeService(store, nil)

	t.Run("NoViewer", func(t *testing.T) {
		_, err := svc.ToggleLike(ctx, 100, 0, 0)
		assert.Equal(t, int64(errno.AuthorizationFailedErrCode), errno.ConvertErr(err).ErrCode)
	})

	t.Run("BothTargets", func(t *testing.T) {
		_, err := svc.ToggleLike(ctx, 100, 42, 7)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	})

	t.Run("NeitherTarget", func(t *testing.T) {
		_, err := svc.ToggleLike(ctx, 0, 0, 7)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	})

	t.Run("MissingTarget", func(t *testing.T) {
		_, err := svc.ToggleLike(ctx, 999, 0, 7)
		assert.Equal(t, int64(errno.RecordNotFoundErrCode), errno.ConvertErr(err).ErrCode)
	})
}

// The unique key must keep at most one row per (target, user) even when many
// callers toggle the same pair at once.
func TestToggleLikeConcurrentSamePair(t *testing.T) {
	ctx := context.Background()
	store := newFakeLikeStore()
	store.videos[100] = true
	svc := NewLikeService(store, nil)

	const callers = 16
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.ToggleLike(ctx, 100, 0, 7)
			assert.NoError(t, err)
			assert.Contains(t, []string{StateLiked, StateUnliked}, res.State)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, store.pairCount(100, 0, 7), 1)
}

func TestCountLikes(t *testing.T) {
	ctx := context.Background()
	store := newFakeLikeStore()
	store.videos[100] = true
	store.comments[42] = true
	svc := NewLikeService(store, nil)

	t.Run("ZeroLikesOnExistingTarget", func(t *testing.T) {
		res, err := svc.CountLikes(ctx, 100, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Count)
		assert.Equal(t, int64(100), res.TargetId)
	})

	t.Run("MissingTarget", func(t *testing.T) {
		_, err := svc.CountLikes(ctx, 999, 0)
		assert.Equal(t, int64(errno.RecordNotFoundErrCode), errno.ConvertErr(err).ErrCode)
	})

	t.Run("CountsDistinctUsers", func(t *testing.T) {
		for _, userId := range []int64{1, 2, 3} {
			_, err := svc.ToggleLike(ctx, 0, 42, userId)
			require.NoError(t, err)
		}
		res, err := svc.CountLikes(ctx, 0, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(3), res.Count)
	})
}

func TestCountLikesCache(t *testing.T) {
	ctx := context.Background()
	store := newFakeLikeStore()
	store.videos[100] = true
	cache := newFakeCountCache()
	svc := NewLikeService(store, cache)

	_, err := svc.ToggleLike(ctx, 100, 0, 7)
	require.NoError(t, err)

	res, err := svc.CountLikes(ctx, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Count)

	// cached value is served until the next toggle invalidates it
	cached, ok := cache.Get(ctx, TargetVideo, 100)
	require.True(t, ok)
	assert.Equal(t, int64(1), cached)

	_, err = svc.ToggleLike(ctx, 100, 0, 7)
	require.NoError(t, err)
	_, ok = cache.Get(ctx, TargetVideo, 100)
	assert.False(t, ok)
}
