package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"github.com/sirupsen/logrus"
)

type HistoryStore interface {
	UserExists(ctx context.Context, userId int64) (bool, error)
	ListWatchHistory(ctx context.Context, userId int64) ([]*model.EnrichedVideo, error)
}

type WatchHistoryService struct {
	store HistoryStore
}

func NewWatchHistoryService(store HistoryStore) *WatchHistoryService {
	return &WatchHistoryService{store: store}
}

// GetWatchHistory returns the viewer's watch log, stored order verbatim.
// An existing user with nothing watched gets an empty list back.
func (s *WatchHistoryService) GetWatchHistory(ctx context.Context, userId int64) ([]*model.EnrichedVideo, error) {
	if userId <= 0 {
		return nil, errno.AuthorizationFailedErr.WithMessage("please login to view watch history")
	}

	exists, err := s.store.UserExists(ctx, userId)
	if err != nil {
		logrus.Errorf("GetWatchHistory existence check failed: %v", err)
		return nil, errno.ServiceErr
	}
	if !exists {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	history, err := s.store.ListWatchHistory(ctx, userId)
	if err != nil {
		logrus.Errorf("GetWatchHistory query failed: %v", err)
		return nil, errno.ServiceErr
	}
	if history == nil {
		history = make([]*model.EnrichedVideo, 0)
	}
	return history, nil
}
