package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoDB struct {
	conn *gorm.DB
}

func NewVideoDB(conn *gorm.DB) *VideoDB {
	return &VideoDB{conn: conn}
}

type videoRow struct {
	VideoId   int64
	Title     string
	CoverUrl  string
	UserName  string
	AvatarUrl string
}

// ListVideos runs the catalog query: optional owner/text filter, owner join,
// whitelisted sort column with video_id as the deterministic tie-break.
func (d *VideoDB) ListVideos(ctx context.Context, q *model.VideoQuery, offset, limit int) ([]*model.VideoSummary, int64, error) {
	base := func() *gorm.DB {
		tx := d.conn.WithContext(ctx).Model(&model.Video{}).
			Joins("JOIN users ON users.user_id = videos.user_id")
		if q.OwnerId != 0 {
			tx = tx.Where("videos.user_id = ?", q.OwnerId)
		}
		if q.TextQuery != "" {
			pattern := "%" + q.TextQuery + "%"
			tx = tx.Where("videos.title like ? Or videos.description like ?", pattern, pattern)
		}
		return tx
	}

	var count int64
	if err := base().Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListVideos count failed, err: %v", err)
	}

	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	rows := make([]videoRow, 0, limit)
	if err := base().
		Select("videos.video_id, videos.title, videos.cover_url, users.user_name, users.avatar_url").
		Order(q.SortColumn + " " + dir + ", videos.video_id ASC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListVideos failed, err: %v", err)
	}

	summaries := make([]*model.VideoSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, &model.VideoSummary{
			VideoId:  r.VideoId,
			Title:    r.Title,
			CoverUrl: r.CoverUrl,
			Owner:    model.UserLite{UserName: r.UserName, AvatarUrl: r.AvatarUrl},
		})
	}
	return summaries, count, nil
}
