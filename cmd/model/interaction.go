package model

type Comment struct {
	CommentId int64 `gorm:"primaryKey"`
	UserId    int64 `gorm:"index"`
	VideoId   int64 `gorm:"index"`
	Content   string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// Like targets exactly one of VideoId/CommentId; the other stays zero.
// The composite unique key is what keeps at most one like per (target, user)
// pair under concurrent toggles.
type Like struct {
	LikeId    int64  `json:"like_id" gorm:"primaryKey"`
	VideoId   int64  `json:"video_id" gorm:"uniqueIndex:uk_like_target_user"`
	CommentId int64  `json:"comment_id" gorm:"uniqueIndex:uk_like_target_user"`
	UserId    int64  `json:"user_id" gorm:"uniqueIndex:uk_like_target_user"`
	CreatedAt string `json:"created_at"`
}
