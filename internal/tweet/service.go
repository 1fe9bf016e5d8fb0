package tweet

import (
	"context"

	"tweethub/internal/common"
	"tweethub/internal/dbmysql"
	"tweethub/internal/like"
)

// TweetUsecase is what higher layers (handlers, jobs) program against.
type TweetUsecase interface {
	PostTweet(ctx context.Context, userID *uint64, content string) (*dbmysql.Tweet, error)
	GetTweet(ctx context.Context, tweetID uint64) (*dbmysql.Tweet, error)
	ListUserTweets(ctx context.Context, userID uint64) ([]dbmysql.Tweet, error)
	Timeline(ctx context.Context) ([]dbmysql.Tweet, error)
	Likes(ctx context.Context, tweetID uint64) ([]dbmysql.Like, error)
}

type TweetService struct {
	tweetRepo TweetRepository
	likeRepo  like.LikeRepository
}

func NewTweetService(t TweetRepository, l like.LikeRepository) *TweetService {
	return &TweetService{tweetRepo: t, likeRepo: l}
}

// PostTweet validates the content and persists a new tweet. UserID may be
// nil: a tweet can outlive its author. CreatedAt is filled by the insert.
func (s *TweetService) PostTweet(ctx context.Context, userID *uint64, content string) (*dbmysql.Tweet, error) {
	if err := common.ValidateContent(content); err != nil {
		return nil, err
	}

	tweet := &dbmysql.Tweet{
		UserID:  userID,
		Content: content,
	}
	if err := s.tweetRepo.CreateTweet(ctx, tweet); err != nil {
		return nil, err
	}

	return tweet, nil
}

func (s *TweetService) GetTweet(ctx context.Context, tweetID uint64) (*dbmysql.Tweet, error) {
	return s.tweetRepo.GetTweetByID(ctx, tweetID)
}

func (s *TweetService) ListUserTweets(ctx context.Context, userID uint64) ([]dbmysql.Tweet, error) {
	return s.tweetRepo.ListUserTweets(ctx, userID)
}

func (s *TweetService) Timeline(ctx context.Context) ([]dbmysql.Tweet, error) {
	return s.tweetRepo.ListTweets(ctx)
}

// Likes resolves the polymorphic like records targeting one tweet, newest
// first. Read-only; a tweet with no likes yields an empty slice.
func (s *TweetService) Likes(ctx context.Context, tweetID uint64) ([]dbmysql.Like, error) {
	return s.likeRepo.LikesFor(ctx, common.EntityKindTweet, tweetID)
}
