package like

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tweethub/internal/common"
	"tweethub/internal/dbmysql"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := filepath.Join(t.TempDir(), "tweethub_test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbmysql.Migrate(db))

	return db
}

func seedUsers(t *testing.T, db *gorm.DB, handles ...string) []uint64 {
	ids := make([]uint64, 0, len(handles))
	for _, h := range handles {
		user := dbmysql.User{Handle: h}
		require.NoError(t, db.Create(&user).Error)
		ids = append(ids, user.UserID)
	}
	return ids
}

func TestLikeRepository_LikesFor_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	ids := seedUsers(t, db, "alice", "bob", "carol")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := range ids {
		like := dbmysql.Like{
			UserID:     &ids[i],
			EntityKind: common.EntityKindTweet,
			EntityID:   42,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.AddLike(ctx, &like))
	}

	likes, err := repo.LikesFor(ctx, common.EntityKindTweet, 42)
	require.NoError(t, err)
	require.Len(t, likes, 3)
	assert.Equal(t, &ids[2], likes[0].UserID)
	assert.Equal(t, &ids[0], likes[2].UserID)
}

func TestLikeRepository_LikesFor_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	likes, err := repo.LikesFor(context.Background(), common.EntityKindTweet, 999)
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestLikeRepository_LikesFor_KindIsPartOfTheKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	ids := seedUsers(t, db, "alice")
	tweetLike := dbmysql.Like{UserID: &ids[0], EntityKind: common.EntityKindTweet, EntityID: 42}
	photoLike := dbmysql.Like{UserID: &ids[0], EntityKind: common.EntityKindPhoto, EntityID: 42}
	require.NoError(t, repo.AddLike(ctx, &tweetLike))
	require.NoError(t, repo.AddLike(ctx, &photoLike))

	likes, err := repo.LikesFor(ctx, common.EntityKindTweet, 42)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, common.EntityKindTweet, likes[0].EntityKind)
}

func TestLikeRepository_AddLike_DuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	ids := seedUsers(t, db, "alice")
	first := dbmysql.Like{UserID: &ids[0], EntityKind: common.EntityKindTweet, EntityID: 42}
	require.NoError(t, repo.AddLike(ctx, &first))

	dup := dbmysql.Like{UserID: &ids[0], EntityKind: common.EntityKindTweet, EntityID: 42}
	assert.Error(t, repo.AddLike(ctx, &dup))
}

func TestLikeRepository_AddLike_InvalidKind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	like := dbmysql.Like{EntityKind: common.EntityKind("comment"), EntityID: 1}
	assert.ErrorIs(t, repo.AddLike(context.Background(), &like), ErrInvalidEntityKind)
}

func TestLikeRepository_RemoveLike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	ids := seedUsers(t, db, "alice")
	like := dbmysql.Like{UserID: &ids[0], EntityKind: common.EntityKindTweet, EntityID: 42}
	require.NoError(t, repo.AddLike(ctx, &like))

	require.NoError(t, repo.RemoveLike(ctx, ids[0], common.EntityKindTweet, 42))

	count, err := repo.CountLikes(ctx, common.EntityKindTweet, 42)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLikeRepository_CountLikes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	ids := seedUsers(t, db, "alice", "bob")
	for i := range ids {
		like := dbmysql.Like{UserID: &ids[i], EntityKind: common.EntityKindTweet, EntityID: 42}
		require.NoError(t, repo.AddLike(ctx, &like))
	}

	count, err := repo.CountLikes(ctx, common.EntityKindTweet, 42)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestLikeRepository_LikerDeletion_KeepsLikeRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	ids := seedUsers(t, db, "alice")
	like := dbmysql.Like{UserID: &ids[0], EntityKind: common.EntityKindTweet, EntityID: 42}
	require.NoError(t, repo.AddLike(ctx, &like))

	require.NoError(t, db.Delete(&dbmysql.User{}, ids[0]).Error)

	likes, err := repo.LikesFor(ctx, common.EntityKindTweet, 42)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Nil(t, likes[0].UserID)
}
