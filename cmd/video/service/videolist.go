package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/pagination"
	"github.com/sirupsen/logrus"
)

// sortColumns whitelists the external sort keys; anything else is rejected
// before the store is touched.
var sortColumns = map[string]string{
	"":           "videos.created_at",
	"createdAt":  "videos.created_at",
	"created_at": "videos.created_at",
	"title":      "videos.title",
	"views":      "videos.visit_count",
	"duration":   "videos.duration",
}

type VideoStore interface {
	ListVideos(ctx context.Context, q *model.VideoQuery, offset, limit int) ([]*model.VideoSummary, int64, error)
}

type VideoListService struct {
	store VideoStore
}

func NewVideoListService(store VideoStore) *VideoListService {
	return &VideoListService{store: store}
}

// ListVideos builds the catalog page. No match is an empty page, never an
// error.
func (s *VideoListService) ListVideos(ctx context.Context, ownerId int64, textQuery, sortBy, sortDir string, p pagination.Params) (*pagination.Page[*model.VideoSummary], error) {
	if ownerId < 0 {
		return nil, errno.ParamErr.WithMessage("invalid owner id")
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, errno.ParamErr.WithMessage("unrecognized sort field: " + sortBy)
	}
	var desc bool
	switch sortDir {
	case "", "desc":
		desc = true
	case "asc":
		desc = false
	default:
		return nil, errno.ParamErr.WithMessage("sort direction must be asc or desc")
	}
	p = p.Normalize()

	q := &model.VideoQuery{
		OwnerId:    ownerId,
		TextQuery:  textQuery,
		SortColumn: column,
		Desc:       desc,
	}
	items, total, err := s.store.ListVideos(ctx, q, p.Offset(), p.Limit())
	if err != nil {
		logrus.Errorf("ListVideos failed: %v", err)
		return nil, errno.ServiceErr
	}
	return pagination.New(items, total, p), nil
}
