package model

// Read-only shapes produced by the joined queries. Each view has a fixed,
// typed layout instead of the free-form documents the store could return.

type UserLite struct {
	UserName  string `json:"user_name"`
	AvatarUrl string `json:"avatar_url"`
}

type CommentView struct {
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	Commenter UserLite `json:"commenter"`
}

type VideoSummary struct {
	VideoId  int64    `json:"video_id"`
	Title    string   `json:"title"`
	CoverUrl string   `json:"cover_url"`
	Owner    UserLite `json:"owner"`
}

type ChannelProfile struct {
	FullName           string `json:"full_name"`
	UserName           string `json:"user_name"`
	Email              string `json:"email"`
	AvatarUrl          string `json:"avatar_url"`
	CoverUrl           string `json:"cover_url"`
	SubscriberCount    int64  `json:"subscriber_count"`
	SubscribedToCount  int64  `json:"subscribed_to_count"`
	IsViewerSubscribed bool   `json:"is_viewer_subscribed"`
}

type VideoOwner struct {
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

type EnrichedVideo struct {
	VideoId     int64      `json:"video_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	VideoUrl    string     `json:"video_url"`
	CoverUrl    string     `json:"cover_url"`
	Duration    string     `json:"duration"`
	WatchTime   string     `json:"watch_time"`
	Owner       VideoOwner `json:"owner"`
}

type LikeCount struct {
	TargetId int64 `json:"target_id"`
	Count    int64 `json:"count"`
}

type ToggleResult struct {
	State string `json:"state"`
	Like  *Like  `json:"like,omitempty"`
}

// VideoQuery carries the catalog filter after the service has validated the
// sort field; SortColumn is always one of the whitelisted column names.
type VideoQuery struct {
	OwnerId    int64
	TextQuery  string
	SortColumn string
	Desc       bool
}
