package model

type User struct {
	UserId    int64  `json:"user_id" gorm:"primaryKey"`
	UserName  string `json:"user_name" gorm:"uniqueIndex;size:64"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarUrl string `json:"avatar_url"`
	CoverUrl  string `json:"cover_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	DeletedAt string `json:"deleted_at"`
}
