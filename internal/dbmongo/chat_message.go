package dbmongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"socialchat/internal/common"
)

const messageCollection = "chat_messages"

// Attachment references a blob in the media store.
type Attachment struct {
	FileID      string `bson:"file_id" json:"file_id"`
	FileURL     string `bson:"file_url" json:"file_url"`
	ContentKind string `bson:"content_kind" json:"content_kind"`
}

// ChatMessage is a single message inside a room. A message carries
// either text or an attachment; the synthetic room-creation marker
// carries neither.
type ChatMessage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RoomID     string             `bson:"room_id" json:"room_id"`
	AuthorID   uint64             `bson:"author_id" json:"author_id"`
	Text       string             `bson:"text" json:"text"`
	Attachment *Attachment        `bson:"attachment,omitempty" json:"attachment,omitempty"`
	ReadBy     []uint64           `bson:"read_by" json:"read_by"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// IsMarker reports whether the message is the synthetic room-creation marker.
func (m *ChatMessage) IsMarker() bool {
	return m.Text == "" && m.Attachment == nil
}

type MessageRepository interface {
	// Append persists msg with a creation timestamp strictly greater
	// than every prior message in the room. Callers serialize appends
	// per room.
	Append(ctx context.Context, msg *ChatMessage) (*ChatMessage, error)
	ListByRoom(ctx context.Context, roomID string, page, limit int) ([]*ChatMessage, error)
	// MarkAllRead adds userID to the receipt set of every message in
	// the room not already read by them, returning how many were
	// newly marked.
	MarkAllRead(ctx context.Context, roomID string, userID uint64) (int64, error)
	// CountRoomsWithUnread counts distinct rooms among roomIDs holding
	// at least one message the user has neither read nor authored.
	CountRoomsWithUnread(ctx context.Context, roomIDs []string, userID uint64) (int64, error)
	// RecentByRooms returns the newest message of each room, ordered
	// by recency descending, paginated.
	RecentByRooms(ctx context.Context, roomIDs []string, page, limit int) ([]*ChatMessage, error)
}

type messageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(mc *MongoClient) MessageRepository {
	return &messageRepository{coll: mc.Database.Collection(messageCollection)}
}

func EnsureMessageIndexes(ctx context.Context, mc *MongoClient) error {
	coll := mc.Database.Collection(messageCollection)
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "created_at", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "read_by", Value: 1}},
		},
	})
	return err
}

func (r *messageRepository) Append(ctx context.Context, msg *ChatMessage) (*ChatMessage, error) {
	// BSON stores times at millisecond precision, so work at that
	// granularity from the start.
	now := time.Now().UTC().Truncate(time.Millisecond)

	// Keep created_at strictly increasing within the room even when
	// the clock has not moved since the previous append.
	var last ChatMessage
	err := r.coll.FindOne(ctx,
		bson.D{{Key: "room_id", Value: msg.RoomID}},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
	).Decode(&last)
	switch {
	case err == nil:
		if !now.After(last.CreatedAt) {
			now = last.CreatedAt.Add(time.Millisecond)
		}
	case errors.Is(err, mongo.ErrNoDocuments):
		// first message in the room
	default:
		return nil, common.WrapError(common.KindStoreUnavailable, err, "reading last message of room %s", msg.RoomID)
	}

	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = now
	if msg.ReadBy == nil {
		msg.ReadBy = []uint64{}
	}

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, err, "inserting message in room %s", msg.RoomID)
	}
	return msg, nil
}

func (r *messageRepository) ListByRoom(ctx context.Context, roomID string, page, limit int) ([]*ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(page * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{{Key: "room_id", Value: roomID}}, opts)
	if err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, err, "listing messages of room %s", roomID)
	}
	defer cursor.Close(ctx)

	messages := []*ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, err, "decoding messages of room %s", roomID)
	}
	return messages, nil
}

func (r *messageRepository) MarkAllRead(ctx context.Context, roomID string, userID uint64) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.D{
			{Key: "room_id", Value: roomID},
			{Key: "read_by", Value: bson.D{{Key: "$ne", Value: userID}}},
		},
		bson.D{{Key: "$addToSet", Value: bson.D{{Key: "read_by", Value: userID}}}},
	)
	if err != nil {
		return 0, common.WrapError(common.KindStoreUnavailable, err, "marking room %s read for user %d", roomID, userID)
	}
	return res.ModifiedCount, nil
}

func (r *messageRepository) CountRoomsWithUnread(ctx context.Context, roomIDs []string, userID uint64) (int64, error) {
	if len(roomIDs) == 0 {
		return 0, nil
	}

	// One unread message is enough to flag a room, so group by room
	// before counting. A viewer's own posts never count as unread.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "room_id", Value: bson.D{{Key: "$in", Value: roomIDs}}},
			{Key: "read_by", Value: bson.D{{Key: "$ne", Value: userID}}},
			{Key: "author_id", Value: bson.D{{Key: "$ne", Value: userID}}},
		}}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$room_id"}}}},
		{{Key: "$count", Value: "rooms"}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, common.WrapError(common.KindStoreUnavailable, err, "counting unread rooms for user %d", userID)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Rooms int64 `bson:"rooms"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, common.WrapError(common.KindStoreUnavailable, err, "decoding unread count for user %d", userID)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Rooms, nil
}

func (r *messageRepository) RecentByRooms(ctx context.Context, roomIDs []string, page, limit int) ([]*ChatMessage, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "room_id", Value: bson.D{{Key: "$in", Value: roomIDs}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$room_id"},
			{Key: "doc", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
		}}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$doc"}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$skip", Value: int64(page * limit)}},
		{{Key: "$limit", Value: int64(limit)}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, err, "aggregating recent conversations")
	}
	defer cursor.Close(ctx)

	var messages []*ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, err, "decoding recent conversations")
	}
	return messages, nil
}
