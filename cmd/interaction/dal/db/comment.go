package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
)

type commentRow struct {
	Content   string
	CreatedAt string
	UserName  string
	AvatarUrl string
}

// CountVideoComments joins users the same way the listing does, so the total
// matches the rows a caller can actually page through.
func (d *InteractionDB) CountVideoComments(ctx context.Context, videoId int64) (count int64, err error) {
	if err := d.conn.WithContext(ctx).Model(&model.Comment{}).
		Joins("JOIN users ON users.user_id = comments.user_id").
		Where("comments.video_id = ?", videoId).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountVideoComments failed, err: %v", err)
	}
	return count, nil
}

// ListVideoComments returns one window of a video's comment thread joined to
// each commenter, oldest first, comment id breaking timestamp ties.
func (d *InteractionDB) ListVideoComments(ctx context.Context, videoId int64, offset, limit int) ([]*model.CommentView, error) {
	rows := make([]commentRow, 0, limit)
	if err := d.conn.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.content, comments.created_at, users.user_name, users.avatar_url").
		Joins("JOIN users ON users.user_id = comments.user_id").
		Where("comments.video_id = ?", videoId).
		Order("comments.created_at ASC, comments.comment_id ASC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "ListVideoComments failed, err: %v", err)
	}
	views := make([]*model.CommentView, 0, len(rows))
	for _, r := range rows {
		views = append(views, &model.CommentView{
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
			Commenter: model.UserLite{UserName: r.UserName, AvatarUrl: r.AvatarUrl},
		})
	}
	return views, nil
}
