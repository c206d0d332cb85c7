package model

type Video struct {
	VideoId     int64  `gorm:"primaryKey"`
	UserId      int64  `gorm:"index"`
	VideoUrl    string
	CoverUrl    string
	Title       string
	Description string
	Duration    string
	VisitCount  int64
	Open        int64
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// UserVideoWatchHistory is an append-only log, one row per watch.
// Repeated views of the same video produce repeated rows; the primary key
// order is the watch order.
type UserVideoWatchHistory struct {
	UserVideoWatchHistoryId int64 `gorm:"primaryKey;autoIncrement"`
	UserId                  int64 `gorm:"index"`
	VideoId                 int64
	WatchTime               string
}
