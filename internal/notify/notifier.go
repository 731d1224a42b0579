// Package notify defines the delivery fan-out invoked after every
// successful message append. Delivery is best-effort, at most once,
// to currently-connected subscribers only; offline clients catch up
// through the message listing on reconnect.
package notify

import (
	"context"

	"socialchat/internal/dbmongo"
)

type Notifier interface {
	// Notify publishes msg to the live subscribers of roomID. Errors
	// are reported for logging only; they never abort the append that
	// triggered the publish.
	Notify(ctx context.Context, roomID string, msg *dbmongo.ChatMessage) error
}

// NoopNotifier discards every event. Used when Redis is not configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, roomID string, msg *dbmongo.ChatMessage) error {
	return nil
}
