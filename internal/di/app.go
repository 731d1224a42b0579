package di

import (
	"log/slog"
	"os"

	"gorm.io/gorm"

	"socialchat/internal/chat/handler"
	"socialchat/internal/config"
	"socialchat/internal/dbmongo"
)

// Application bundles everything main needs to run the chat service.
type Application struct {
	Config  *config.Config
	Log     *slog.Logger
	DB      *gorm.DB
	Mongo   *dbmongo.MongoClient
	Handler *handler.ChatHandler
}

func ProvideLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.Logging.Format == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
