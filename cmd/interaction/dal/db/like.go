package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionDB struct {
	conn *gorm.DB
}

func NewInteractionDB(conn *gorm.DB) *InteractionDB {
	return &InteractionDB{conn: conn}
}

func (d *InteractionDB) VideoExists(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := d.conn.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "VideoExists failed, err: %v", err)
	}
	return count != 0, nil
}

func (d *InteractionDB) CommentExists(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := d.conn.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CommentExists failed, err: %v", err)
	}
	return count != 0, nil
}

// RemoveLike deletes the like matching (target, user) and returns the
// removed row, or nil when no row matched.
func (d *InteractionDB) RemoveLike(ctx context.Context, videoId, commentId, userId int64) (*model.Like, error) {
	likes := make([]model.Like, 0, 1)
	if err := d.conn.WithContext(ctx).Model(&model.Like{}).
		Where("video_id = ? And comment_id = ? And user_id = ?", videoId, commentId, userId).
		Limit(1).Find(&likes).Error; err != nil {
		return nil, errors.Wrapf(err, "RemoveLike lookup failed, err: %v", err)
	}
	if len(likes) == 0 {
		return nil, nil
	}
	res := d.conn.WithContext(ctx).Where("like_id = ?", likes[0].LikeId).Delete(&model.Like{})
	if res.Error != nil {
		return nil, errors.Wrapf(res.Error, "RemoveLike delete failed, err: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		// raced with a concurrent unlike; nothing left to report
		return nil, nil
	}
	return &likes[0], nil
}

// AddLike inserts the like, relying on uk_like_target_user to absorb a
// concurrent duplicate. Returns false when the row already existed.
func (d *InteractionDB) AddLike(ctx context.Context, like *model.Like) (bool, error) {
	res := d.conn.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "AddLike failed, err: %v", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// 统计时关联users表，已注销用户的点赞不计入
func (d *InteractionDB) CountVideoLikes(ctx context.Context, videoId int64) (count int64, err error) {
	if err := d.conn.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN users ON users.user_id = likes.user_id").
		Where("likes.video_id = ?", videoId).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountVideoLikes failed, err: %v", err)
	}
	return count, nil
}

func (d *InteractionDB) CountCommentLikes(ctx context.Context, commentId int64) (count int64, err error) {
	if err := d.conn.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN users ON users.user_id = likes.user_id").
		Where("likes.comment_id = ?", commentId).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountCommentLikes failed, err: %v", err)
	}
	return count, nil
}
