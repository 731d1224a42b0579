package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"socialchat/internal/chat/service"
	"socialchat/internal/common"
	"socialchat/internal/dbmongo"
)

// ChatHandler wires HTTP requests to the chat service. Every route
// except media download runs behind the auth middleware, which puts
// the caller's user id in the request context.
type ChatHandler struct {
	chat     service.ChatService
	media    *dbmongo.MediaStorage
	validate *validator.Validate
	log      *slog.Logger
}

func NewChatHandler(chat service.ChatService, media *dbmongo.MediaStorage, log *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chat:     chat,
		media:    media,
		validate: validator.New(),
		log:      log,
	}
}

// Routes registers all chat and media endpoints on router.
func (h *ChatHandler) Routes(router *mux.Router) {
	// Download stays public so attachment urls work in image tags.
	// Registered first: the authed subrouter below matches everything
	// and mux does not backtrack out of it.
	router.HandleFunc("/media/{fileId}", h.ServeMedia).Methods("GET")

	authed := router.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)

	authed.HandleFunc("/chat/initiate", h.InitiateChat).Methods("POST")
	authed.HandleFunc("/chat/unread-count", h.UnreadCount).Methods("GET")
	authed.HandleFunc("/chat/contacts", h.Contacts).Methods("GET")
	authed.HandleFunc("/chat/{roomId}", h.GetRoom).Methods("GET")
	authed.HandleFunc("/chat/{roomId}/message", h.PostMessage).Methods("POST")
	authed.HandleFunc("/chat/{roomId}/messages", h.GetMessages).Methods("GET")
	authed.HandleFunc("/chat/{roomId}/mark-read", h.MarkRead).Methods("PUT")
	authed.HandleFunc("/media", h.UploadMedia).Methods("POST")
	authed.HandleFunc("/media/{fileId}", h.DeleteMedia).Methods("DELETE")
}

type initiateRequest struct {
	UserIDs []uint64 `json:"user_ids" validate:"required,min=1"`
}

type attachmentRequest struct {
	FileID      string `json:"file_id" validate:"required"`
	FileURL     string `json:"file_url" validate:"required"`
	ContentKind string `json:"content_kind" validate:"required,oneof=image video audio file"`
}

type postMessageRequest struct {
	Text       string             `json:"text"`
	Attachment *attachmentRequest `json:"attachment"`
}

func (h *ChatHandler) InitiateChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	var req initiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, common.NewError(common.KindValidation, "invalid request body"))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, common.NewError(common.KindValidation, "user_ids is required"))
		return
	}

	room, err := h.chat.InitiateRoom(r.Context(), userID, req.UserIDs)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"chatRoom": room,
	})
}

func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}
	roomID := mux.Vars(r)["roomId"]

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, common.NewError(common.KindValidation, "invalid request body"))
		return
	}
	if req.Attachment != nil {
		if err := h.validate.Struct(req.Attachment); err != nil {
			h.writeError(w, common.NewError(common.KindValidation, "invalid attachment: %v", err))
			return
		}
	}

	payload := service.MessagePayload{Text: req.Text}
	if req.Attachment != nil {
		payload.Attachment = &dbmongo.Attachment{
			FileID:      req.Attachment.FileID,
			FileURL:     req.Attachment.FileURL,
			ContentKind: req.Attachment.ContentKind,
		}
	}

	msg, err := h.chat.PostMessage(r.Context(), roomID, userID, payload)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"post":    msg,
	})
}

func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	messages, err := h.chat.RoomMessages(r.Context(), roomID, paginationFromQuery(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"conversation": messages,
	})
}

func (h *ChatHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}
	roomID := mux.Vars(r)["roomId"]

	detail, err := h.chat.RoomWithCounterpart(r.Context(), roomID, userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"room":      detail.Room,
		"members":   detail.Members,
		"otherUser": detail.OtherUser,
	})
}

func (h *ChatHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}
	roomID := mux.Vars(r)["roomId"]

	marked, err := h.chat.MarkRead(r.Context(), roomID, userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"marked":  marked,
	})
}

func (h *ChatHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	count, err := h.chat.UnreadConversationCount(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"chats":   count,
	})
}

func (h *ChatHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	summaries, err := h.chat.RecentConversations(r.Context(), userID, paginationFromQuery(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"conversations": summaries,
	})
}

func paginationFromQuery(r *http.Request) service.Pagination {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return service.Pagination{Page: page, Limit: limit}
}

func (h *ChatHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}

func (h *ChatHandler) writeError(w http.ResponseWriter, err error) {
	kind := common.KindOf(err)
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case common.IsClientError(err):
		status = http.StatusBadRequest
		var ce *common.Error
		if errors.As(err, &ce) {
			message = ce.Message
		}
	case kind == common.KindStoreUnavailable:
		status = http.StatusServiceUnavailable
		message = "store unavailable"
		h.log.Error("store unavailable", "error", err)
	default:
		h.log.Error("unexpected error", "error", err)
	}

	h.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error": map[string]interface{}{
			"kind":    string(kind),
			"message": message,
		},
	})
}
