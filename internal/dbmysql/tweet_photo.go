package dbmysql

import (
	"fmt"
	"time"

	"tweethub/internal/common"
)

// TweetPhoto is one media attachment on a tweet. UserID duplicates the
// tweet owner on purpose: per-uploader queries (moderation, bans) must not
// have to join through tweets.
//
// Physical deletion happens elsewhere; this layer only flips the soft-delete
// pair. HasDeleted and DeletedAt are always written together.
type TweetPhoto struct {
	PhotoID    uint64             `gorm:"primaryKey;autoIncrement;column:photo_id" json:"photo_id"`
	TweetID    *uint64            `gorm:"column:tweet_id;index:idx_photos_tweet_order,priority:1" json:"tweet_id"`
	UserID     *uint64            `gorm:"column:user_id;index:idx_photos_user_created,priority:1" json:"user_id"`
	File       string             `gorm:"column:file;size:255;not null" json:"file"`
	Order      int                `gorm:"column:order;default:0;index:idx_photos_tweet_order,priority:2" json:"order"`
	Status     common.PhotoStatus `gorm:"column:status;default:0;index:idx_photos_status_created,priority:1" json:"status"`
	HasDeleted bool               `gorm:"column:has_deleted;default:false;index:idx_photos_deleted_created,priority:1" json:"has_deleted"`
	DeletedAt  *time.Time         `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	CreatedAt  time.Time          `gorm:"column:created_at;autoCreateTime;index:idx_photos_user_created,priority:2;index:idx_photos_deleted_created,priority:2;index:idx_photos_status_created,priority:2" json:"created_at"`

	Tweet *Tweet `gorm:"foreignKey:TweetID;references:TweetID;belongsTo;constraint:OnDelete:SET NULL" json:"tweet,omitempty"`
	User  *User  `gorm:"foreignKey:UserID;references:UserID;belongsTo;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (TweetPhoto) TableName() string {
	return "tweet_photos"
}

// MarkDeleted flips both halves of the soft-delete pair. A photo with
// has_deleted set and no deleted_at is invalid, so callers persist the two
// columns in a single update.
func (p *TweetPhoto) MarkDeleted(now time.Time) {
	now = now.UTC()
	p.HasDeleted = true
	p.DeletedAt = &now
}

func (p TweetPhoto) String() string {
	var tweetID uint64
	if p.TweetID != nil {
		tweetID = *p.TweetID
	}
	return fmt.Sprintf("%d: %s", tweetID, p.File)
}
