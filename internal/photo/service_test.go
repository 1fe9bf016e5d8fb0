package photo

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweethub/internal/common"
	"tweethub/internal/dbmysql"
)

func TestPhotoService_AttachPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPhotoRepository(ctrl)
	svc := NewPhotoService(mockRepo)
	ctx := context.Background()

	userID := uint64(7)

	tests := []struct {
		name        string
		file        string
		order       int
		setup       func()
		wantErr     bool
		errContains string
	}{
		{
			name:  "success with defaults",
			file:  "photos/a.jpg",
			order: 0,
			setup: func() {
				mockRepo.EXPECT().CreatePhoto(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, p *dbmysql.TweetPhoto) error {
						p.PhotoID = 1
						return nil
					})
			},
		},
		{
			name:  "explicit display order",
			file:  "photos/b.jpg",
			order: 3,
			setup: func() {
				mockRepo.EXPECT().CreatePhoto(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:        "missing file reference",
			file:        "  ",
			setup:       func() {},
			wantErr:     true,
			errContains: "file",
		},
		{
			name: "repo failure",
			file: "photos/c.jpg",
			setup: func() {
				mockRepo.EXPECT().CreatePhoto(ctx, gomock.Any()).Return(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			photo, err := svc.AttachPhoto(ctx, 42, &userID, tt.file, tt.order)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, photo)
			require.NotNil(t, photo.TweetID)
			assert.Equal(t, uint64(42), *photo.TweetID)
			assert.Equal(t, &userID, photo.UserID)
			assert.Equal(t, tt.order, photo.Order)
			assert.Equal(t, common.PhotoStatusPending, photo.Status)
			assert.False(t, photo.HasDeleted)
		})
	}
}

func TestPhotoService_ApprovePhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPhotoRepository(ctrl)
	svc := NewPhotoService(mockRepo)
	ctx := context.Background()

	pending := &dbmysql.TweetPhoto{PhotoID: 1, File: "photos/a.jpg", Status: common.PhotoStatusPending}
	mockRepo.EXPECT().GetPhotoByID(ctx, uint64(1)).Return(pending, nil)
	mockRepo.EXPECT().UpdatePhotoStatus(ctx, uint64(1), common.PhotoStatusApproved).Return(nil)

	assert.NoError(t, svc.ApprovePhoto(ctx, 1))
}

func TestPhotoService_RejectPhoto_AlreadyModerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPhotoRepository(ctrl)
	svc := NewPhotoService(mockRepo)
	ctx := context.Background()

	approved := &dbmysql.TweetPhoto{PhotoID: 2, File: "photos/b.jpg", Status: common.PhotoStatusApproved}
	mockRepo.EXPECT().GetPhotoByID(ctx, uint64(2)).Return(approved, nil)

	err := svc.RejectPhoto(ctx, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already moderated")
}

func TestPhotoService_ApprovePhoto_SoftDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPhotoRepository(ctrl)
	svc := NewPhotoService(mockRepo)
	ctx := context.Background()

	deleted := &dbmysql.TweetPhoto{PhotoID: 3, File: "photos/c.jpg", HasDeleted: true}
	mockRepo.EXPECT().GetPhotoByID(ctx, uint64(3)).Return(deleted, nil)

	assert.ErrorIs(t, svc.ApprovePhoto(ctx, 3), ErrPhotoNotFound)
}

func TestPhotoService_ModerationQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPhotoRepository(ctrl)
	svc := NewPhotoService(mockRepo)
	ctx := context.Background()

	want := []dbmysql.TweetPhoto{{PhotoID: 1, File: "photos/a.jpg"}}
	mockRepo.EXPECT().ListPhotosByStatus(ctx, common.PhotoStatusPending).Return(want, nil)

	queue, err := svc.ModerationQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, queue)
}

func TestPhotoService_SoftDeletePhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPhotoRepository(ctrl)
	svc := NewPhotoService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().SoftDeletePhoto(ctx, uint64(9)).Return(nil)
	assert.NoError(t, svc.SoftDeletePhoto(ctx, 9))
}
