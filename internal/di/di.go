package di

import (
	"gorm.io/gorm"

	"tweethub/internal/like"
	"tweethub/internal/photo"
	"tweethub/internal/tweet"
)

// Application bundles the wired services a binary needs once the database
// handle exists.
type Application struct {
	DB     *gorm.DB
	Tweets *tweet.TweetService
	Photos *photo.PhotoService
	Likes  like.LikeRepository
}
