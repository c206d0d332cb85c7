package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
)

// 统计某个频道的订阅者数目
func (d *UserDB) CountSubscribers(ctx context.Context, channelId int64) (count int64, err error) {
	if err := d.conn.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountSubscribers failed, err: %v", err)
	}
	return count, nil
}

// 统计某个用户订阅的频道数目
func (d *UserDB) CountSubscriptions(ctx context.Context, subscriberId int64) (count int64, err error) {
	if err := d.conn.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountSubscriptions failed, err: %v", err)
	}
	return count, nil
}

func (d *UserDB) IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := d.conn.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? And channel_id = ?", subscriberId, channelId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsSubscribed failed, err: %v", err)
	}
	return count != 0, nil
}
