package dbmysql

import (
	"time"
)

// User rows are mastered by the identity service; the table exists here so
// the ON DELETE SET NULL constraints on tweets, tweet_photos and likes can
// be declared and migrated. Nothing in this module owns the user lifecycle.
type User struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	Handle    string    `gorm:"column:handle;uniqueIndex;size:50;not null" json:"handle"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
