package tweet

import (
	"context"

	"gorm.io/gorm"

	"tweethub/internal/dbmysql"
)

type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet *dbmysql.Tweet) error
	GetTweetByID(ctx context.Context, tweetID uint64) (*dbmysql.Tweet, error)
	ListUserTweets(ctx context.Context, userID uint64) ([]dbmysql.Tweet, error)
	ListTweets(ctx context.Context) ([]dbmysql.Tweet, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) CreateTweet(ctx context.Context, tweet *dbmysql.Tweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

func (r *tweetRepository) GetTweetByID(ctx context.Context, tweetID uint64) (*dbmysql.Tweet, error) {
	var tweet dbmysql.Tweet
	err := r.db.WithContext(ctx).First(&tweet, "tweet_id = ?", tweetID).Error
	if err != nil {
		return nil, err
	}

	return &tweet, nil
}

// ListUserTweets serves the "latest tweets by user" lookup backed by the
// (user_id, created_at) index.
func (r *tweetRepository) ListUserTweets(ctx context.Context, userID uint64) ([]dbmysql.Tweet, error) {
	var tweets []dbmysql.Tweet
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tweets).Error
	return tweets, err
}

// ListTweets returns every tweet in the default order: grouped by author,
// newest first within each author.
func (r *tweetRepository) ListTweets(ctx context.Context) ([]dbmysql.Tweet, error) {
	var tweets []dbmysql.Tweet
	err := r.db.WithContext(ctx).
		Order("user_id").
		Order("created_at DESC").
		Find(&tweets).Error
	return tweets, err
}
