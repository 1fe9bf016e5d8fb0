package dbmysql

import (
	"time"

	"tweethub/internal/common"
)

// Like is a polymorphic reaction: the target is addressed by the
// (entity_kind, entity_id) pair rather than a direct foreign key, so the
// same table serves tweets and any later likeable entity. The unique index
// keeps one like per user per target.
type Like struct {
	LikeID     uint64            `gorm:"primaryKey;autoIncrement;column:like_id" json:"like_id"`
	UserID     *uint64           `gorm:"column:user_id;uniqueIndex:idx_likes_user_entity,priority:1" json:"user_id"`
	EntityKind common.EntityKind `gorm:"column:entity_kind;size:20;uniqueIndex:idx_likes_user_entity,priority:2;index:idx_likes_entity_created,priority:1" json:"entity_kind"`
	EntityID   uint64            `gorm:"column:entity_id;uniqueIndex:idx_likes_user_entity,priority:3;index:idx_likes_entity_created,priority:2" json:"entity_id"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime;index:idx_likes_entity_created,priority:3" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID;belongsTo;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (Like) TableName() string {
	return "likes"
}
