package dbmongo

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialchat/internal/common"
	"socialchat/internal/config"
)

// setupMongo connects to a local MongoDB and returns repositories
// bound to a throwaway database. Set SOCIALCHAT_TEST_MONGO=1 (plus
// MONGO_HOST/MONGO_PORT if not local) to run these tests.
func setupMongo(t *testing.T) (*MongoClient, RoomRepository, MessageRepository) {
	t.Helper()
	if os.Getenv("SOCIALCHAT_TEST_MONGO") == "" {
		t.Skip("set SOCIALCHAT_TEST_MONGO=1 to run MongoDB integration tests")
	}

	cfg := &config.Config{
		MongoDB: config.MongoDBConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Username: os.Getenv("MONGO_USERNAME"),
			Password: os.Getenv("MONGO_PASSWORD"),
			Database: fmt.Sprintf("socialchat_test_%s", uuid.NewString()[:8]),
		},
	}

	client, err := NewMongoConnection(cfg)
	require.NoError(t, err, "ensure MongoDB is running locally")

	ctx := context.Background()
	require.NoError(t, EnsureRoomIndexes(ctx, client))
	require.NoError(t, EnsureMessageIndexes(ctx, client))

	t.Cleanup(func() {
		_ = client.Database.Drop(context.Background())
		_ = client.Close(context.Background())
	})

	return client, NewRoomRepository(client), NewMessageRepository(client)
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRoomRepository_FindOrCreate_Integration(t *testing.T) {
	_, rooms, _ := setupMongo(t)
	ctx := context.Background()

	room1, created, err := rooms.FindOrCreate(ctx, []uint64{2, 1})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, []uint64{1, 2}, room1.MemberIDs)

	// same member set in any order resolves to the same room
	room2, created, err := rooms.FindOrCreate(ctx, []uint64{1, 2})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, room1.ID, room2.ID)

	// different member set creates a new room
	room3, created, err := rooms.FindOrCreate(ctx, []uint64{1, 3})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, room1.ID, room3.ID)
}

func TestRoomRepository_FindOrCreate_Concurrent(t *testing.T) {
	_, rooms, _ := setupMongo(t)
	ctx := context.Background()

	const attempts = 8
	ids := make([]string, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			room, _, err := rooms.FindOrCreate(ctx, []uint64{10, 20})
			if !assert.NoError(t, err) {
				return
			}
			ids[i] = room.ID
		}(i)
	}
	wg.Wait()

	for i := 1; i < attempts; i++ {
		assert.Equal(t, ids[0], ids[i], "concurrent initiations must converge on one room")
	}
}

func TestRoomRepository_RoomByID_NotFound(t *testing.T) {
	_, rooms, _ := setupMongo(t)

	_, err := rooms.RoomByID(context.Background(), "missing-room")
	require.Error(t, err)
	assert.Equal(t, common.KindRoomNotFound, common.KindOf(err))
}

func TestRoomRepository_RoomsByUser(t *testing.T) {
	_, rooms, _ := setupMongo(t)
	ctx := context.Background()

	_, _, err := rooms.FindOrCreate(ctx, []uint64{1, 2})
	require.NoError(t, err)
	_, _, err = rooms.FindOrCreate(ctx, []uint64{1, 3})
	require.NoError(t, err)
	_, _, err = rooms.FindOrCreate(ctx, []uint64{2, 3})
	require.NoError(t, err)

	mine, err := rooms.RoomsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func appendText(t *testing.T, messages MessageRepository, roomID string, author uint64, text string) *ChatMessage {
	t.Helper()
	msg, err := messages.Append(context.Background(), &ChatMessage{
		RoomID:   roomID,
		AuthorID: author,
		Text:     text,
	})
	require.NoError(t, err)
	return msg
}

func TestMessageRepository_AppendOrdering(t *testing.T) {
	_, rooms, messages := setupMongo(t)
	ctx := context.Background()

	room, _, err := rooms.FindOrCreate(ctx, []uint64{1, 2})
	require.NoError(t, err)

	const n = 20
	for i := 0; i < n; i++ {
		appendText(t, messages, room.ID, 1, fmt.Sprintf("msg-%d", i))
	}

	listed, err := messages.ListByRoom(ctx, room.ID, 0, n)
	require.NoError(t, err)
	require.Len(t, listed, n)

	var prev time.Time
	for i, msg := range listed {
		assert.Equal(t, fmt.Sprintf("msg-%d", i), msg.Text, "list order must match append order")
		assert.True(t, msg.CreatedAt.After(prev), "created_at must be strictly increasing")
		prev = msg.CreatedAt
	}
}

func TestMessageRepository_PaginationBoundary(t *testing.T) {
	_, rooms, messages := setupMongo(t)
	ctx := context.Background()

	room, _, err := rooms.FindOrCreate(ctx, []uint64{1, 2})
	require.NoError(t, err)

	const total = 45
	for i := 0; i < total; i++ {
		appendText(t, messages, room.ID, 1, fmt.Sprintf("msg-%d", i))
	}

	page0, err := messages.ListByRoom(ctx, room.ID, 0, 30)
	require.NoError(t, err)
	page1, err := messages.ListByRoom(ctx, room.ID, 1, 30)
	require.NoError(t, err)

	assert.Len(t, page0, 30)
	assert.Len(t, page1, total-30)

	seen := map[string]bool{}
	for _, msg := range append(page0, page1...) {
		assert.False(t, seen[msg.ID.Hex()], "pages must not overlap")
		seen[msg.ID.Hex()] = true
	}
	assert.Len(t, seen, total)
}

func TestMessageRepository_MarkAllRead_Idempotent(t *testing.T) {
	_, rooms, messages := setupMongo(t)
	ctx := context.Background()

	room, _, err := rooms.FindOrCreate(ctx, []uint64{1, 2})
	require.NoError(t, err)

	appendText(t, messages, room.ID, 1, "one")
	appendText(t, messages, room.ID, 1, "two")
	appendText(t, messages, room.ID, 2, "three")

	// receipts apply to all messages regardless of author
	marked, err := messages.MarkAllRead(ctx, room.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), marked)

	marked, err = messages.MarkAllRead(ctx, room.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), marked)

	listed, err := messages.ListByRoom(ctx, room.ID, 0, 10)
	require.NoError(t, err)
	for _, msg := range listed {
		assert.Contains(t, msg.ReadBy, uint64(2))
	}
}

func TestMessageRepository_CountRoomsWithUnread(t *testing.T) {
	_, rooms, messages := setupMongo(t)
	ctx := context.Background()

	roomA, _, err := rooms.FindOrCreate(ctx, []uint64{1, 2})
	require.NoError(t, err)
	roomB, _, err := rooms.FindOrCreate(ctx, []uint64{1, 3})
	require.NoError(t, err)
	roomIDs := []string{roomA.ID, roomB.ID}

	// many unread messages in one room still count it once
	appendText(t, messages, roomA.ID, 2, "hey")
	appendText(t, messages, roomA.ID, 2, "you there?")
	appendText(t, messages, roomB.ID, 3, "ping")

	count, err := messages.CountRoomsWithUnread(ctx, roomIDs, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// own posts never count as unread for their author
	count, err = messages.CountRoomsWithUnread(ctx, roomIDs, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = messages.MarkAllRead(ctx, roomA.ID, 1)
	require.NoError(t, err)

	count, err = messages.CountRoomsWithUnread(ctx, roomIDs, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = messages.CountRoomsWithUnread(ctx, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMessageRepository_RecentByRooms(t *testing.T) {
	_, rooms, messages := setupMongo(t)
	ctx := context.Background()

	roomA, _, err := rooms.FindOrCreate(ctx, []uint64{1, 2})
	require.NoError(t, err)
	roomB, _, err := rooms.FindOrCreate(ctx, []uint64{1, 3})
	require.NoError(t, err)

	appendText(t, messages, roomA.ID, 1, "a-old")
	appendText(t, messages, roomA.ID, 2, "a-new")
	appendText(t, messages, roomB.ID, 3, "b-newest")

	recent, err := messages.RecentByRooms(ctx, []string{roomA.ID, roomB.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// newest room first, one message per room, each the room's latest
	assert.Equal(t, "b-newest", recent[0].Text)
	assert.Equal(t, "a-new", recent[1].Text)

	// pagination over rooms
	firstPage, err := messages.RecentByRooms(ctx, []string{roomA.ID, roomB.ID}, 0, 1)
	require.NoError(t, err)
	require.Len(t, firstPage, 1)
	assert.Equal(t, "b-newest", firstPage[0].Text)

	secondPage, err := messages.RecentByRooms(ctx, []string{roomA.ID, roomB.ID}, 1, 1)
	require.NoError(t, err)
	require.Len(t, secondPage, 1)
	assert.Equal(t, "a-new", secondPage[0].Text)
}
