package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	TargetVideo   = "video"
	TargetComment = "comment"

	StateLiked   = "liked"
	StateUnliked = "unliked"
)

// LikeStore is the slice of the entity store the toggle engine needs.
type LikeStore interface {
	VideoExists(ctx context.Context, videoId int64) (bool, error)
	CommentExists(ctx context.Context, commentId int64) (bool, error)
	RemoveLike(ctx context.Context, videoId, commentId, userId int64) (*model.Like, error)
	AddLike(ctx context.Context, like *model.Like) (bool, error)
	CountVideoLikes(ctx context.Context, videoId int64) (int64, error)
	CountCommentLikes(ctx context.Context, commentId int64) (int64, error)
}

// LikeCountCache is optional; a nil cache means every count hits the store.
type LikeCountCache interface {
	Get(ctx context.Context, targetKind string, targetId int64) (int64, bool)
	Set(ctx context.Context, targetKind string, targetId, count int64)
	Invalidate(ctx context.Context, targetKind string, targetId int64)
}

type LikeService struct {
	store LikeStore
	cache LikeCountCache
}

func NewLikeService(store LikeStore, cache LikeCountCache) *LikeService {
	return &LikeService{store: store, cache: cache}
}

// ToggleLike flips the like on a video or comment for the acting user.
// Delete first, then insert behind the unique key, so two racing toggles of
// the same pair still leave at most one row.
func (s *LikeService) ToggleLike(ctx context.Context, videoId, commentId, userId int64) (*model.ToggleResult, error) {
	if userId <= 0 {
		return nil, errno.AuthorizationFailedErr.WithMessage("please login to like")
	}
	kind, err := validateTarget(videoId, commentId)
	if err != nil {
		return nil, err
	}
	if err := s.checkTargetExists(ctx, kind, videoId, commentId); err != nil {
		return nil, err
	}

	removed, err := s.store.RemoveLike(ctx, videoId, commentId, userId)
	if err != nil {
		logrus.Errorf("ToggleLike remove failed: %v", err)
		return nil, errno.ServiceErr
	}
	if removed != nil {
		s.invalidateCount(ctx, kind, videoId, commentId)
		return &model.ToggleResult{State: StateUnliked, Like: removed}, nil
	}

	like := &model.Like{
		LikeId:    int64(uuid.New().ID()),
		VideoId:   videoId,
		CommentId: commentId,
		UserId:    userId,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	inserted, err := s.store.AddLike(ctx, like)
	if err != nil {
		logrus.Errorf("ToggleLike insert failed: %v", err)
		return nil, errno.ServiceErr
	}
	s.invalidateCount(ctx, kind, videoId, commentId)
	if !inserted {
		// a concurrent toggle from the same user won the insert; the like exists
		return &model.ToggleResult{State: StateLiked}, nil
	}
	return &model.ToggleResult{State: StateLiked, Like: like}, nil
}

// CountLikes reports how many users like the target. An existing target with
// no likes counts zero; a missing target is an error.
func (s *LikeService) CountLikes(ctx context.Context, videoId, commentId int64) (*model.LikeCount, error) {
	kind, err := validateTarget(videoId, commentId)
	if err != nil {
		return nil, err
	}
	if err := s.checkTargetExists(ctx, kind, videoId, commentId); err != nil {
		return nil, err
	}

	targetId := videoId
	if kind == TargetComment {
		targetId = commentId
	}

	if s.cache != nil {
		if count, ok := s.cache.Get(ctx, kind, targetId); ok {
			return &model.LikeCount{TargetId: targetId, Count: count}, nil
		}
	}

	var count int64
	if kind == TargetVideo {
		count, err = s.store.CountVideoLikes(ctx, videoId)
	} else {
		count, err = s.store.CountCommentLikes(ctx, commentId)
	}
	if err != nil {
		logrus.Errorf("CountLikes failed: %v", err)
		return nil, errno.ServiceErr
	}
	if s.cache != nil {
		s.cache.Set(ctx, kind, targetId, count)
	}
	return &model.LikeCount{TargetId: targetId, Count: count}, nil
}

func validateTarget(videoId, commentId int64) (string, error) {
	if videoId < 0 || commentId < 0 {
		return "", errno.ParamErr.WithMessage("invalid target id")
	}
	switch {
	case videoId != 0 && commentId != 0:
		return "", errno.ParamErr.WithMessage("only one of video_id and comment_id may be set")
	case videoId != 0:
		return TargetVideo, nil
	case commentId != 0:
		return TargetComment, nil
	default:
		return "", errno.ParamErr.WithMessage("one of video_id and comment_id is required")
	}
}

func (s *LikeService) checkTargetExists(ctx context.Context, kind string, videoId, commentId int64) error {
	var exists bool
	var err error
	if kind == TargetVideo {
		exists, err = s.store.VideoExists(ctx, videoId)
	} else {
		exists, err = s.store.CommentExists(ctx, commentId)
	}
	if err != nil {
		logrus.Errorf("target existence check failed: %v", err)
		return errno.ServiceErr
	}
	if !exists {
		return errno.RecordNotFoundErr.WithMessage(kind + " not found")
	}
	return nil
}

func (s *LikeService) invalidateCount(ctx context.Context, kind string, videoId, commentId int64) {
	if s.cache == nil {
		return
	}
	if kind == TargetVideo {
		s.cache.Invalidate(ctx, kind, videoId)
	} else {
		s.cache.Invalidate(ctx, kind, commentId)
	}
}
