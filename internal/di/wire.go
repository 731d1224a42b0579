//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"socialchat/internal/chat/handler"
	"socialchat/internal/chat/service"
	"socialchat/internal/config"
	"socialchat/internal/dbmongo"
	"socialchat/internal/dbmysql"
	"socialchat/internal/notify"
	"socialchat/internal/user"
)

// This is just a declaration — wire generates the real body.
func InitializeChatService() (*Application, error) {
	wire.Build(
		config.Load,
		ProvideLogger,
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewRoomRepository,
		dbmongo.NewMessageRepository,
		dbmongo.NewMediaStorage,
		user.NewUserRepository,
		notify.NewRedisClient,
		notify.NewRedisNotifier,
		wire.Bind(new(notify.Notifier), new(*notify.RedisNotifier)),
		service.NewChatService,
		handler.NewChatHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil // dummy for compilation
}
