package like

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tweethub/internal/common"
	"tweethub/internal/dbmysql"
)

var ErrInvalidEntityKind = errors.New("entity kind cannot be liked")

// LikeRepository is the lookup interface over the polymorphic likes table.
// Tweets and photos are addressed the same way, by (kind, id).
type LikeRepository interface {
	AddLike(ctx context.Context, like *dbmysql.Like) error
	RemoveLike(ctx context.Context, userID uint64, kind common.EntityKind, entityID uint64) error
	LikesFor(ctx context.Context, kind common.EntityKind, entityID uint64) ([]dbmysql.Like, error)
	CountLikes(ctx context.Context, kind common.EntityKind, entityID uint64) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) AddLike(ctx context.Context, like *dbmysql.Like) error {
	if !like.EntityKind.IsValid() {
		return ErrInvalidEntityKind
	}
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) RemoveLike(ctx context.Context, userID uint64, kind common.EntityKind, entityID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND entity_kind = ? AND entity_id = ?", userID, kind, entityID).
		Delete(&dbmysql.Like{}).Error
}

// LikesFor returns the likes targeting one entity, newest first.
func (r *likeRepository) LikesFor(ctx context.Context, kind common.EntityKind, entityID uint64) ([]dbmysql.Like, error) {
	var likes []dbmysql.Like
	err := r.db.WithContext(ctx).
		Where("entity_kind = ? AND entity_id = ?", kind, entityID).
		Order("created_at DESC").
		Find(&likes).Error
	return likes, err
}

func (r *likeRepository) CountLikes(ctx context.Context, kind common.EntityKind, entityID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("entity_kind = ? AND entity_id = ?", kind, entityID).
		Count(&count).Error
	return count, err
}
