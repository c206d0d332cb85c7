package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
)

type historyRow struct {
	VideoId     int64
	Title       string
	Description string
	VideoUrl    string
	CoverUrl    string
	Duration    string
	WatchTime   string
	UserName    string
	FullName    string
	AvatarUrl   string
}

// ListWatchHistory replays a user's watch log in stored order, joining each
// entry to the video and its single owner. The join is over primary keys, so
// one history row never fans out.
func (d *UserDB) ListWatchHistory(ctx context.Context, userId int64) ([]*model.EnrichedVideo, error) {
	rows := make([]historyRow, 0)
	if err := d.conn.WithContext(ctx).Model(&model.UserVideoWatchHistory{}).
		Select("videos.video_id, videos.title, videos.description, videos.video_url, videos.cover_url, videos.duration, "+
			"user_video_watch_histories.watch_time, users.user_name, users.full_name, users.avatar_url").
		Joins("JOIN videos ON videos.video_id = user_video_watch_histories.video_id").
		Joins("JOIN users ON users.user_id = videos.user_id").
		Where("user_video_watch_histories.user_id = ?", userId).
		Order("user_video_watch_histories.user_video_watch_history_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "ListWatchHistory failed, err: %v", err)
	}

	history := make([]*model.EnrichedVideo, 0, len(rows))
	for _, r := range rows {
		history = append(history, &model.EnrichedVideo{
			VideoId:     r.VideoId,
			Title:       r.Title,
			Description: r.Description,
			VideoUrl:    r.VideoUrl,
			CoverUrl:    r.CoverUrl,
			Duration:    r.Duration,
			WatchTime:   r.WatchTime,
			Owner: model.VideoOwner{
				UserName:  r.UserName,
				FullName:  r.FullName,
				AvatarUrl: r.AvatarUrl,
			},
		})
	}
	return history, nil
}
