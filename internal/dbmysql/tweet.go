package dbmysql

import (
	"fmt"
	"time"
)

// Tweet is one authored post. CreatedAt is written once at insert and never
// updated afterwards; repositories must not Save a loaded Tweet back
// wholesale. All timestamps are persisted in UTC.
type Tweet struct {
	TweetID   uint64    `gorm:"primaryKey;autoIncrement;column:tweet_id" json:"tweet_id"`
	UserID    *uint64   `gorm:"column:user_id;index:idx_tweets_user_created,priority:1" json:"user_id"`
	Content   string    `gorm:"column:content;size:255;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_tweets_user_created,priority:2" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID;belongsTo;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (Tweet) TableName() string {
	return "tweets"
}

// HoursToNow returns the whole hours elapsed since the tweet was posted,
// measured against UTC now. Clamped to zero for clock skew.
func (t *Tweet) HoursToNow() int {
	elapsed := time.Now().UTC().Sub(t.CreatedAt.UTC())
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Hour)
}

func (t Tweet) String() string {
	author := "unknown"
	if t.User != nil {
		author = t.User.Handle
	}
	return fmt.Sprintf("%s %s: %s", t.CreatedAt.UTC().Format(time.RFC3339), author, t.Content)
}
