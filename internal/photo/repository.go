package photo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tweethub/internal/common"
	"tweethub/internal/dbmysql"
)

var (
	ErrPhotoNotFound = errors.New("photo not found or already deleted")
	ErrInvalidStatus = errors.New("invalid photo status")
)

type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo *dbmysql.TweetPhoto) error
	GetPhotoByID(ctx context.Context, photoID uint64) (*dbmysql.TweetPhoto, error)
	ListTweetPhotos(ctx context.Context, tweetID uint64) ([]dbmysql.TweetPhoto, error)
	ListUserPhotos(ctx context.Context, userID uint64) ([]dbmysql.TweetPhoto, error)
	ListPhotosByStatus(ctx context.Context, status common.PhotoStatus) ([]dbmysql.TweetPhoto, error)
	SoftDeletePhoto(ctx context.Context, photoID uint64) error
	UpdatePhotoStatus(ctx context.Context, photoID uint64, status common.PhotoStatus) error
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) CreatePhoto(ctx context.Context, photo *dbmysql.TweetPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) GetPhotoByID(ctx context.Context, photoID uint64) (*dbmysql.TweetPhoto, error) {
	var photo dbmysql.TweetPhoto
	err := r.db.WithContext(ctx).First(&photo, "photo_id = ?", photoID).Error
	if err != nil {
		return nil, err
	}

	return &photo, nil
}

// ListTweetPhotos returns the live photos of one tweet in display order,
// backed by the (tweet_id, order) index. Ties on order break by insert time.
func (r *photoRepository) ListTweetPhotos(ctx context.Context, tweetID uint64) ([]dbmysql.TweetPhoto, error) {
	var photos []dbmysql.TweetPhoto
	err := r.db.WithContext(ctx).
		Where("tweet_id = ? AND has_deleted = ?", tweetID, false).
		Order("`order`").
		Order("created_at").
		Find(&photos).Error
	return photos, err
}

// ListUserPhotos uses the denormalized user_id column, so one uploader's
// photos come back without joining through tweets.
func (r *photoRepository) ListUserPhotos(ctx context.Context, userID uint64) ([]dbmysql.TweetPhoto, error) {
	var photos []dbmysql.TweetPhoto
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND has_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&photos).Error
	return photos, err
}

// ListPhotosByStatus is the moderation queue view, oldest first.
func (r *photoRepository) ListPhotosByStatus(ctx context.Context, status common.PhotoStatus) ([]dbmysql.TweetPhoto, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var photos []dbmysql.TweetPhoto
	err := r.db.WithContext(ctx).
		Where("status = ? AND has_deleted = ?", status, false).
		Order("created_at").
		Find(&photos).Error
	return photos, err
}

// SoftDeletePhoto sets has_deleted and deleted_at in one UPDATE so the pair
// can never disagree. Already-deleted and missing photos both report
// ErrPhotoNotFound; the operation is idempotent either way.
func (r *photoRepository) SoftDeletePhoto(ctx context.Context, photoID uint64) error {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.TweetPhoto{}).
		Where("photo_id = ? AND has_deleted = ?", photoID, false).
		Updates(map[string]interface{}{
			"has_deleted": true,
			"deleted_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

func (r *photoRepository) UpdatePhotoStatus(ctx context.Context, photoID uint64, status common.PhotoStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	res := r.db.WithContext(ctx).
		Model(&dbmysql.TweetPhoto{}).
		Where("photo_id = ? AND has_deleted = ?", photoID, false).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}
