package database

import (
	"VideoTube.com/cmd/model"
	"VideoTube.com/config"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

// Open connects to MySQL and returns the handle the stores are built on.
// The handle is injected into each DB type instead of living in a global.
func Open() (*gorm.DB, error) {
	cfg := config.ConfigInfo.Mysql
	dsn := cfg.Username + ":" + cfg.Password + "@tcp(" + cfg.Addr + ")/" + cfg.Database +
		"?charset=" + cfg.Charset + "&parseTime=True&loc=Local"
	conn, err := gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "open mysql failed, err: %v", err)
	}
	if err = conn.Use(gormopentracing.New()); err != nil {
		return nil, errors.Wrapf(err, "register tracing plugin failed, err: %v", err)
	}
	if err = migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// migrate keeps the schema and the uk_like_target_user unique key in place;
// the toggle relies on that key to stay race free.
func migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Subscription{},
		&model.UserVideoWatchHistory{},
	); err != nil {
		return errors.Wrapf(err, "auto migrate failed, err: %v", err)
	}
	return nil
}
