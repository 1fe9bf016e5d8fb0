package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"tweethub/internal/config"
	"tweethub/internal/dbmysql"
	"tweethub/internal/di"
)

const usage = `usage: tweethub <command>

commands:
  migrate             create or update the database schema
  queue               print the photo moderation queue
  approve <photo-id>  approve a pending photo
  reject <photo-id>   reject a pending photo
  delete <photo-id>   soft-delete a photo
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	err := godotenv.Load()
	if err != nil {
		logrus.Info(".env file not found, using system env variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	setupLogger(cfg)

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	app := di.InitializeApplication(db)
	ctx := context.Background()

	switch os.Args[1] {
	case "migrate":
		if err := dbmysql.Migrate(app.DB); err != nil {
			logrus.Fatalf("Failed to migrate database: %v", err)
		}
		logrus.Info("database migration completed")

	case "queue":
		photos, err := app.Photos.ModerationQueue(ctx)
		if err != nil {
			logrus.Fatalf("Failed to read moderation queue: %v", err)
		}
		for _, p := range photos {
			fmt.Printf("%d\t%s\t%s\n", p.PhotoID, p.CreatedAt.UTC().Format("2006-01-02 15:04"), p)
		}

	case "approve":
		if err := app.Photos.ApprovePhoto(ctx, photoIDArg()); err != nil {
			logrus.Fatalf("Failed to approve photo: %v", err)
		}

	case "reject":
		if err := app.Photos.RejectPhoto(ctx, photoIDArg()); err != nil {
			logrus.Fatalf("Failed to reject photo: %v", err)
		}

	case "delete":
		if err := app.Photos.SoftDeletePhoto(ctx, photoIDArg()); err != nil {
			logrus.Fatalf("Failed to delete photo: %v", err)
		}

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func photoIDArg() uint64 {
	if len(os.Args) < 3 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	id, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		logrus.Fatalf("Invalid photo id %q: %v", os.Args[2], err)
	}
	return id
}

func setupLogger(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
