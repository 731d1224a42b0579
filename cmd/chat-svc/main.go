package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"socialchat/internal/dbmongo"
	"socialchat/internal/dbmysql"
	"socialchat/internal/di"
)

func main() {
	log.Println("Starting Chat Service...")

	app, err := di.InitializeChatService()
	if err != nil {
		log.Fatalf("Failed to initialize chat service: %v", err)
	}

	// Migrations and indexes run in main where they belong
	if err := app.DB.AutoMigrate(&dbmysql.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := dbmongo.EnsureRoomIndexes(ctx, app.Mongo); err != nil {
		log.Fatalf("Failed to create room indexes: %v", err)
	}
	if err := dbmongo.EnsureMessageIndexes(ctx, app.Mongo); err != nil {
		log.Fatalf("Failed to create message indexes: %v", err)
	}
	cancel()

	app.Log.Info("migrations completed")

	router := mux.NewRouter()
	app.Handler.Routes(router)

	server := &http.Server{
		Addr:         app.Config.ServerAddr(),
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		app.Log.Info("chat service running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("shutting down chat service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		app.Log.Error("server shutdown failed", "error", err)
	}
	if err := app.Mongo.Close(shutdownCtx); err != nil {
		app.Log.Error("mongo disconnect failed", "error", err)
	}

	app.Log.Info("chat service stopped")
}
