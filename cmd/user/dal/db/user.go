package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserDB struct {
	conn *gorm.DB
}

func NewUserDB(conn *gorm.DB) *UserDB {
	return &UserDB{conn: conn}
}

// GetUserByName resolves a handle; nil when no such user exists.
func (d *UserDB) GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	users := make([]model.User, 0, 1)
	if err := d.conn.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ?", userName).
		Limit(1).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUserByName failed, err: %v", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (d *UserDB) UserExists(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := d.conn.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "UserExists failed, err: %v", err)
	}
	return count != 0, nil
}
