package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"socialchat/internal/common"
	"socialchat/internal/dbmongo"
	"socialchat/internal/notify"
	"socialchat/internal/user"
)

const (
	// DefaultMessagePageSize applies to message listings.
	DefaultMessagePageSize = 30
	// DefaultContactPageSize applies to the contacts listing.
	DefaultContactPageSize = 10
)

// Pagination is the page/pageSize convention shared by the list
// operations. Page origin is 0.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p Pagination) normalize(defaultLimit int) (page, limit int) {
	page = p.Page
	if page < 0 {
		page = 0
	}
	limit = p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}

// ConversationSummary previews a room for a given viewer: the newest
// message and the counterpart's public profile.
//
// OtherUser follows the two-party convention: the first non-viewer
// member in the room's stored member order. For rooms with more than
// two members this picks the lowest non-viewer id; a group-aware
// summary is a known limitation.
type ConversationSummary struct {
	RoomID      string               `json:"room_id"`
	LastMessage *dbmongo.ChatMessage `json:"last_message"`
	OtherUser   *user.Profile        `json:"other_user,omitempty"`
}

// RoomDetail is a room with its member profiles resolved.
type RoomDetail struct {
	Room      *dbmongo.ChatRoom `json:"room"`
	Members   []*user.Profile   `json:"members"`
	OtherUser *user.Profile     `json:"other_user,omitempty"`
}

// MessagePayload is the body of a user post: exactly one of Text or
// Attachment must be set.
type MessagePayload struct {
	Text       string
	Attachment *dbmongo.Attachment
}

// ChatService defines the interface exposed to the handler layer
type ChatService interface {
	InitiateRoom(ctx context.Context, initiatorID uint64, memberIDs []uint64) (*dbmongo.ChatRoom, error)
	PostMessage(ctx context.Context, roomID string, authorID uint64, payload MessagePayload) (*dbmongo.ChatMessage, error)
	RoomMessages(ctx context.Context, roomID string, p Pagination) ([]*dbmongo.ChatMessage, error)
	MarkRead(ctx context.Context, roomID string, userID uint64) (int64, error)
	UnreadConversationCount(ctx context.Context, userID uint64) (int64, error)
	RecentConversations(ctx context.Context, viewerID uint64, p Pagination) ([]*ConversationSummary, error)
	RoomWithCounterpart(ctx context.Context, roomID string, viewerID uint64) (*RoomDetail, error)
}

type chatService struct {
	rooms    dbmongo.RoomRepository
	messages dbmongo.MessageRepository
	users    user.UserRepository
	notifier notify.Notifier
	log      *slog.Logger

	// roomLocks serializes append and mark-read per room so message
	// timestamps stay strictly increasing and receipt updates are not
	// lost under concurrency. Reads take no lock.
	roomLocks sync.Map
}

// Constructor used in DI/wire
func NewChatService(rooms dbmongo.RoomRepository, messages dbmongo.MessageRepository,
	users user.UserRepository, notifier notify.Notifier, log *slog.Logger) ChatService {
	return &chatService{
		rooms:    rooms,
		messages: messages,
		users:    users,
		notifier: notifier,
		log:      log,
	}
}

func (s *chatService) roomLock(roomID string) *sync.Mutex {
	mu, _ := s.roomLocks.LoadOrStore(roomID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// InitiateRoom finds or creates the room whose member set is the
// union of memberIDs and the initiator. A freshly created room gets
// one synthetic marker message authored by the initiator.
func (s *chatService) InitiateRoom(ctx context.Context, initiatorID uint64, memberIDs []uint64) (*dbmongo.ChatRoom, error) {
	members := lo.Uniq(append([]uint64{initiatorID}, memberIDs...))
	if len(members) < 2 {
		return nil, common.NewError(common.KindInvalidMembership, "a room needs at least two distinct members, got %d", len(members))
	}

	room, created, err := s.rooms.FindOrCreate(ctx, members)
	if err != nil {
		return nil, err
	}

	if created {
		// The marker goes through the regular append path so it takes
		// part in ordering and read tracking like any other message.
		if _, err := s.append(ctx, room.ID, initiatorID, MessagePayload{}); err != nil {
			return nil, err
		}
		s.log.Info("chat room created", "room_id", room.ID, "members", len(members))
	}

	return room, nil
}

func (s *chatService) PostMessage(ctx context.Context, roomID string, authorID uint64, payload MessagePayload) (*dbmongo.ChatMessage, error) {
	if payload.Text == "" && payload.Attachment == nil {
		return nil, common.NewError(common.KindValidation, "message needs text or an attachment")
	}
	if payload.Text != "" && payload.Attachment != nil {
		return nil, common.NewError(common.KindValidation, "message cannot carry both text and an attachment")
	}

	room, err := s.rooms.RoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.HasMember(authorID) {
		return nil, common.NewError(common.KindNotAMember, "user %d is not a member of room %s", authorID, roomID)
	}

	return s.append(ctx, roomID, authorID, payload)
}

// append is the sole write path for messages. The per-room lock is
// released before the notifier runs; a publish failure never aborts
// the append.
func (s *chatService) append(ctx context.Context, roomID string, authorID uint64, payload MessagePayload) (*dbmongo.ChatMessage, error) {
	msg := &dbmongo.ChatMessage{
		RoomID:     roomID,
		AuthorID:   authorID,
		Text:       payload.Text,
		Attachment: payload.Attachment,
	}

	mu := s.roomLock(roomID)
	mu.Lock()
	msg, err := s.messages.Append(ctx, msg)
	mu.Unlock()
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, roomID, msg); err != nil {
		s.log.Warn("delivery notify failed", "room_id", roomID, "message_id", msg.ID.Hex(), "error", err)
	}
	return msg, nil
}

func (s *chatService) RoomMessages(ctx context.Context, roomID string, p Pagination) ([]*dbmongo.ChatMessage, error) {
	if _, err := s.rooms.RoomByID(ctx, roomID); err != nil {
		return nil, err
	}

	page, limit := p.normalize(DefaultMessagePageSize)
	return s.messages.ListByRoom(ctx, roomID, page, limit)
}

func (s *chatService) MarkRead(ctx context.Context, roomID string, userID uint64) (int64, error) {
	if _, err := s.rooms.RoomByID(ctx, roomID); err != nil {
		return 0, err
	}

	mu := s.roomLock(roomID)
	mu.Lock()
	defer mu.Unlock()
	return s.messages.MarkAllRead(ctx, roomID, userID)
}

func (s *chatService) UnreadConversationCount(ctx context.Context, userID uint64) (int64, error) {
	rooms, err := s.rooms.RoomsByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(rooms) == 0 {
		return 0, nil
	}

	roomIDs := lo.Map(rooms, func(r *dbmongo.ChatRoom, _ int) string { return r.ID })
	return s.messages.CountRoomsWithUnread(ctx, roomIDs, userID)
}

func (s *chatService) RecentConversations(ctx context.Context, viewerID uint64, p Pagination) ([]*ConversationSummary, error) {
	rooms, err := s.rooms.RoomsByUser(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return []*ConversationSummary{}, nil
	}

	roomsByID := lo.KeyBy(rooms, func(r *dbmongo.ChatRoom) string { return r.ID })
	roomIDs := lo.Keys(roomsByID)

	page, limit := p.normalize(DefaultContactPageSize)
	recent, err := s.messages.RecentByRooms(ctx, roomIDs, page, limit)
	if err != nil {
		return nil, err
	}

	counterparts := make(map[string]uint64, len(recent))
	for _, msg := range recent {
		if room, ok := roomsByID[msg.RoomID]; ok {
			if other, ok := counterpartOf(room, viewerID); ok {
				counterparts[msg.RoomID] = other
			}
		}
	}

	profiles, err := s.profilesByID(ctx, lo.Uniq(lo.Values(counterparts)))
	if err != nil {
		return nil, err
	}

	summaries := make([]*ConversationSummary, 0, len(recent))
	for _, msg := range recent {
		summary := &ConversationSummary{
			RoomID:      msg.RoomID,
			LastMessage: msg,
		}
		if otherID, ok := counterparts[msg.RoomID]; ok {
			summary.OtherUser = profiles[otherID]
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *chatService) RoomWithCounterpart(ctx context.Context, roomID string, viewerID uint64) (*RoomDetail, error) {
	room, err := s.rooms.RoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	members, err := s.users.ProfilesByIDs(ctx, room.MemberIDs)
	if err != nil {
		return nil, err
	}

	detail := &RoomDetail{Room: room, Members: members}
	if otherID, ok := counterpartOf(room, viewerID); ok {
		for _, m := range members {
			if m.UserID == otherID {
				detail.OtherUser = m
				break
			}
		}
	}
	return detail, nil
}

// counterpartOf resolves the "other participant" of a room: the first
// non-viewer member in stored order.
func counterpartOf(room *dbmongo.ChatRoom, viewerID uint64) (uint64, bool) {
	for _, id := range room.MemberIDs {
		if id != viewerID {
			return id, true
		}
	}
	return 0, false
}

func (s *chatService) profilesByID(ctx context.Context, ids []uint64) (map[uint64]*user.Profile, error) {
	profiles, err := s.users.ProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return lo.KeyBy(profiles, func(p *user.Profile) uint64 { return p.UserID }), nil
}
