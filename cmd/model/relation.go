package model

import "time"

// Subscription 订阅关系实体
type Subscription struct {
	SubscriptionId int64     `json:"subscription_id" gorm:"primaryKey"`
	SubscriberId   int64     `json:"subscriber_id" gorm:"index"`
	ChannelId      int64     `json:"channel_id" gorm:"index"`
	CreatedAt      time.Time `json:"created_at"`
}
