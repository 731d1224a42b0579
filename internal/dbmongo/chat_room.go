package dbmongo

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"socialchat/internal/common"
)

const roomCollection = "chat_rooms"

// ChatRoom is a chat context shared by a fixed set of members.
// The member set is immutable after creation.
type ChatRoom struct {
	ID        string    `bson:"_id" json:"id"`
	MemberIDs []uint64  `bson:"member_ids" json:"member_ids"`
	MemberKey string    `bson:"member_key" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// HasMember reports whether userID belongs to the room.
func (r *ChatRoom) HasMember(userID uint64) bool {
	for _, id := range r.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

type RoomRepository interface {
	// FindOrCreate returns the room with exactly this member set,
	// creating it if absent. The returned bool is true when a new
	// room was created.
	FindOrCreate(ctx context.Context, memberIDs []uint64) (*ChatRoom, bool, error)
	RoomsByUser(ctx context.Context, userID uint64) ([]*ChatRoom, error)
	RoomByID(ctx context.Context, roomID string) (*ChatRoom, error)
}

type roomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(mc *MongoClient) RoomRepository {
	return &roomRepository{coll: mc.Database.Collection(roomCollection)}
}

// EnsureRoomIndexes creates the unique membership-key index the
// find-or-create path relies on. Called once at startup.
func EnsureRoomIndexes(ctx context.Context, mc *MongoClient) error {
	coll := mc.Database.Collection(roomCollection)
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "member_key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "member_ids", Value: 1}},
		},
	})
	return err
}

// memberKey normalizes a member set into the unique key the room
// dedup constraint is declared on. Callers pass sorted, deduplicated ids.
func memberKey(memberIDs []uint64) string {
	parts := make([]string, len(memberIDs))
	for i, id := range memberIDs {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ":")
}

func (r *roomRepository) FindOrCreate(ctx context.Context, memberIDs []uint64) (*ChatRoom, bool, error) {
	ids := append([]uint64(nil), memberIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	key := memberKey(ids)

	// Upsert on the unique member key so two concurrent initiations
	// of the same member set converge on a single document.
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "_id", Value: uuid.NewString()},
		{Key: "member_ids", Value: ids},
		{Key: "member_key", Value: key},
		{Key: "created_at", Value: time.Now().UTC()},
	}}}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "member_key", Value: key}}, update,
		options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, common.WrapError(common.KindStoreUnavailable, err, "upserting room")
	}
	created := res.UpsertedCount == 1

	var room ChatRoom
	if err := r.coll.FindOne(ctx, bson.D{{Key: "member_key", Value: key}}).Decode(&room); err != nil {
		return nil, false, common.WrapError(common.KindStoreUnavailable, err, "reading room after upsert")
	}
	return &room, created, nil
}

func (r *roomRepository) RoomsByUser(ctx context.Context, userID uint64) ([]*ChatRoom, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "member_ids", Value: userID}})
	if err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, err, "listing rooms for user %d", userID)
	}
	defer cursor.Close(ctx)

	var rooms []*ChatRoom
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, err, "decoding rooms for user %d", userID)
	}
	return rooms, nil
}

func (r *roomRepository) RoomByID(ctx context.Context, roomID string) (*ChatRoom, error) {
	var room ChatRoom
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: roomID}}).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewError(common.KindRoomNotFound, "no room exists for id %s", roomID)
	}
	if err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, err, "fetching room %s", roomID)
	}
	return &room, nil
}
