package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/pagination"
	"github.com/sirupsen/logrus"
)

type CommentStore interface {
	VideoExists(ctx context.Context, videoId int64) (bool, error)
	CountVideoComments(ctx context.Context, videoId int64) (int64, error)
	ListVideoComments(ctx context.Context, videoId int64, offset, limit int) ([]*model.CommentView, error)
}

type CommentService struct {
	store CommentStore
}

func NewCommentService(store CommentStore) *CommentService {
	return &CommentService{store: store}
}

// ListComments pages through a video's comment thread, oldest first. A video
// with no comments (or a page past the end) yields an empty page; only a
// missing video is an error.
func (s *CommentService) ListComments(ctx context.Context, videoId int64, p pagination.Params) (*pagination.Page[*model.CommentView], error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("invalid video id")
	}
	p = p.Normalize()

	exists, err := s.store.VideoExists(ctx, videoId)
	if err != nil {
		logrus.Errorf("ListComments existence check failed: %v", err)
		return nil, errno.ServiceErr
	}
	if !exists {
		return nil, errno.RecordNotFoundErr.WithMessage("video not found")
	}

	total, err := s.store.CountVideoComments(ctx, videoId)
	if err != nil {
		logrus.Errorf("ListComments count failed: %v", err)
		return nil, errno.ServiceErr
	}
	items, err := s.store.ListVideoComments(ctx, videoId, p.Offset(), p.Limit())
	if err != nil {
		logrus.Errorf("ListComments query failed: %v", err)
		return nil, errno.ServiceErr
	}
	return pagination.New(items, total, p), nil
}
