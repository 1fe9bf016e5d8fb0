package photo

import (
	"context"
	"fmt"

	"tweethub/internal/common"
	"tweethub/internal/dbmysql"
)

// PhotoUsecase is what higher layers program against.
type PhotoUsecase interface {
	AttachPhoto(ctx context.Context, tweetID uint64, userID *uint64, file string, order int) (*dbmysql.TweetPhoto, error)
	GetPhoto(ctx context.Context, photoID uint64) (*dbmysql.TweetPhoto, error)
	ListTweetPhotos(ctx context.Context, tweetID uint64) ([]dbmysql.TweetPhoto, error)
	ListUserPhotos(ctx context.Context, userID uint64) ([]dbmysql.TweetPhoto, error)
	ModerationQueue(ctx context.Context) ([]dbmysql.TweetPhoto, error)
	SoftDeletePhoto(ctx context.Context, photoID uint64) error
	ApprovePhoto(ctx context.Context, photoID uint64) error
	RejectPhoto(ctx context.Context, photoID uint64) error
}

type PhotoService struct {
	photoRepo PhotoRepository
}

func NewPhotoService(p PhotoRepository) *PhotoService {
	return &PhotoService{photoRepo: p}
}

// AttachPhoto stores a new attachment for a tweet. The file reference must
// already exist in blob storage; this layer only records it. userID is the
// tweet owner, denormalized onto the photo row. New photos always start
// PENDING and not deleted, whatever the caller passes.
func (s *PhotoService) AttachPhoto(ctx context.Context, tweetID uint64, userID *uint64, file string, order int) (*dbmysql.TweetPhoto, error) {
	if err := common.ValidateFileRef(file); err != nil {
		return nil, err
	}

	photo := &dbmysql.TweetPhoto{
		TweetID: &tweetID,
		UserID:  userID,
		File:    file,
		Order:   order,
		Status:  common.PhotoStatusPending,
	}
	if err := s.photoRepo.CreatePhoto(ctx, photo); err != nil {
		return nil, err
	}

	return photo, nil
}

func (s *PhotoService) GetPhoto(ctx context.Context, photoID uint64) (*dbmysql.TweetPhoto, error) {
	return s.photoRepo.GetPhotoByID(ctx, photoID)
}

func (s *PhotoService) ListTweetPhotos(ctx context.Context, tweetID uint64) ([]dbmysql.TweetPhoto, error) {
	return s.photoRepo.ListTweetPhotos(ctx, tweetID)
}

func (s *PhotoService) ListUserPhotos(ctx context.Context, userID uint64) ([]dbmysql.TweetPhoto, error) {
	return s.photoRepo.ListUserPhotos(ctx, userID)
}

// ModerationQueue lists photos still waiting on a decision, oldest first.
func (s *PhotoService) ModerationQueue(ctx context.Context) ([]dbmysql.TweetPhoto, error) {
	return s.photoRepo.ListPhotosByStatus(ctx, common.PhotoStatusPending)
}

// SoftDeletePhoto marks the photo deleted now. The row stays until an
// external sweeper removes it.
func (s *PhotoService) SoftDeletePhoto(ctx context.Context, photoID uint64) error {
	return s.photoRepo.SoftDeletePhoto(ctx, photoID)
}

func (s *PhotoService) ApprovePhoto(ctx context.Context, photoID uint64) error {
	return s.moderate(ctx, photoID, common.PhotoStatusApproved)
}

func (s *PhotoService) RejectPhoto(ctx context.Context, photoID uint64) error {
	return s.moderate(ctx, photoID, common.PhotoStatusRejected)
}

// moderate applies a decision to a photo that is still PENDING. Decisions
// are final at this layer; re-moderating is an error.
func (s *PhotoService) moderate(ctx context.Context, photoID uint64, status common.PhotoStatus) error {
	photo, err := s.photoRepo.GetPhotoByID(ctx, photoID)
	if err != nil {
		return err
	}
	if photo.HasDeleted {
		return ErrPhotoNotFound
	}
	if photo.Status != common.PhotoStatusPending {
		return fmt.Errorf("photo %d already moderated as %s", photoID, photo.Status)
	}

	return s.photoRepo.UpdatePhotoStatus(ctx, photoID, status)
}
