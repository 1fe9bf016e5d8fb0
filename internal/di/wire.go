//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"tweethub/internal/like"
	"tweethub/internal/photo"
	"tweethub/internal/tweet"
)

// Declaration only; wire generates the real body in wire_gen.go.
func InitializeApplication(db *gorm.DB) *Application {
	wire.Build(
		tweet.NewTweetRepository,
		like.NewLikeRepository,
		tweet.NewTweetService,
		photo.NewPhotoRepository,
		photo.NewPhotoService,
		wire.Struct(new(Application), "*"),
	)
	return &Application{} // dummy for compilation
}
