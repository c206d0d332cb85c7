package service

import (
	"context"
	"strings"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"github.com/sirupsen/logrus"
)

type ProfileStore interface {
	GetUserByName(ctx context.Context, userName string) (*model.User, error)
	CountSubscribers(ctx context.Context, channelId int64) (int64, error)
	CountSubscriptions(ctx context.Context, subscriberId int64) (int64, error)
	IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error)
}

type ChannelProfileService struct {
	store ProfileStore
}

func NewChannelProfileService(store ProfileStore) *ChannelProfileService {
	return &ChannelProfileService{store: store}
}

// GetChannelProfile resolves a channel by handle and derives its subscriber
// counts at read time; nothing here is denormalized onto the user row.
// viewerId 0 means an anonymous viewer and simply reads as not subscribed.
func (s *ChannelProfileService) GetChannelProfile(ctx context.Context, handle string, viewerId int64) (*model.ChannelProfile, error) {
	handle = strings.ToLower(strings.TrimSpace(handle))
	if handle == "" {
		return nil, errno.ParamErr.WithMessage("handle is required")
	}

	user, err := s.store.GetUserByName(ctx, handle)
	if err != nil {
		logrus.Errorf("GetChannelProfile lookup failed: %v", err)
		return nil, errno.ServiceErr
	}
	if user == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("channel not found")
	}

	subscriberCount, err := s.store.CountSubscribers(ctx, user.UserId)
	if err != nil {
		logrus.Errorf("GetChannelProfile subscriber count failed: %v", err)
		return nil, errno.ServiceErr
	}
	subscribedToCount, err := s.store.CountSubscriptions(ctx, user.UserId)
	if err != nil {
		logrus.Errorf("GetChannelProfile subscription count failed: %v", err)
		return nil, errno.ServiceErr
	}

	isViewerSubscribed := false
	if viewerId > 0 {
		isViewerSubscribed, err = s.store.IsSubscribed(ctx, viewerId, user.UserId)
		if err != nil {
			logrus.Errorf("GetChannelProfile viewer check failed: %v", err)
			return nil, errno.ServiceErr
		}
	}

	return &model.ChannelProfile{
		FullName:           user.FullName,
		UserName:           user.UserName,
		Email:              user.Email,
		AvatarUrl:          user.AvatarUrl,
		CoverUrl:           user.CoverUrl,
		SubscriberCount:    subscriberCount,
		SubscribedToCount:  subscribedToCount,
		IsViewerSubscribed: isViewerSubscribed,
	}, nil
}
