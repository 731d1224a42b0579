package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"socialchat/internal/chat/service/mocks"
	"socialchat/internal/config"
	"socialchat/internal/dbmongo"
	"socialchat/internal/notify"
)

// setupScenario wires the service against a real MongoDB with a
// throwaway database. Set SOCIALCHAT_TEST_MONGO=1 to run.
func setupScenario(t *testing.T) ChatService {
	t.Helper()
	if os.Getenv("SOCIALCHAT_TEST_MONGO") == "" {
		t.Skip("set SOCIALCHAT_TEST_MONGO=1 to run MongoDB integration tests")
	}

	host := os.Getenv("MONGO_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("MONGO_PORT")
	if port == "" {
		port = "27017"
	}

	cfg := &config.Config{
		MongoDB: config.MongoDBConfig{
			Host:     host,
			Port:     port,
			Username: os.Getenv("MONGO_USERNAME"),
			Password: os.Getenv("MONGO_PASSWORD"),
			Database: fmt.Sprintf("socialchat_scenario_%s", uuid.NewString()[:8]),
		},
	}

	client, err := dbmongo.NewMongoConnection(cfg)
	require.NoError(t, err, "ensure MongoDB is running locally")

	ctx := context.Background()
	require.NoError(t, dbmongo.EnsureRoomIndexes(ctx, client))
	require.NoError(t, dbmongo.EnsureMessageIndexes(ctx, client))

	t.Cleanup(func() {
		_ = client.Database.Drop(context.Background())
		_ = client.Close(context.Background())
	})

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().ProfilesByIDs(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewChatService(
		dbmongo.NewRoomRepository(client),
		dbmongo.NewMessageRepository(client),
		users,
		notify.NoopNotifier{},
		log,
	)
}

// The full lifecycle: initiate, post, unread count, mark read.
func TestChatScenario_EndToEnd(t *testing.T) {
	svc := setupScenario(t)
	ctx := context.Background()

	const alice, bob = uint64(1), uint64(2)

	// A initiates a room with B: exactly one marker message exists.
	room, err := svc.InitiateRoom(ctx, alice, []uint64{bob})
	require.NoError(t, err)

	msgs, err := svc.RoomMessages(ctx, room.ID, Pagination{})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].IsMarker())

	// initiating again changes nothing
	again, err := svc.InitiateRoom(ctx, alice, []uint64{bob})
	require.NoError(t, err)
	assert.Equal(t, room.ID, again.ID)

	msgs, err = svc.RoomMessages(ctx, room.ID, Pagination{})
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	// A posts "hello": room has two messages, B has one unread conversation.
	_, err = svc.PostMessage(ctx, room.ID, alice, MessagePayload{Text: "hello"})
	require.NoError(t, err)

	msgs, err = svc.RoomMessages(ctx, room.ID, Pagination{})
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	unread, err := svc.UnreadConversationCount(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// B marks the room read: both messages get B's receipt ("hello"
	// and the marker), and the unread count drops to zero.
	marked, err := svc.MarkRead(ctx, room.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	unread, err = svc.UnreadConversationCount(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	// repeated mark-read is a no-op
	marked, err = svc.MarkRead(ctx, room.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(0), marked)

	// both messages are A's own posts, so A has no unread conversations
	unread, err = svc.UnreadConversationCount(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}
