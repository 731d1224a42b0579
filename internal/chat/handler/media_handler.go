package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"socialchat/internal/common"
)

const maxUploadBytes = 32 << 20 // 32 MiB

// UploadMedia stores an attachment blob and returns the id/url pair
// the client embeds in a subsequent message post.
func (h *ChatHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.writeError(w, common.NewError(common.KindValidation, "invalid multipart body"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, common.NewError(common.KindValidation, "file field is required"))
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	media, err := h.media.UploadFile(r.Context(), header.Filename, mimeType, userID, file)
	if err != nil {
		h.log.Error("media upload failed", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   map[string]interface{}{"kind": "upload_failed", "message": "upload failed"},
		})
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"fileId":  media.ID,
		"fileUrl": media.URL,
	})
}

func (h *ChatHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	if err := h.media.DeleteFile(r.Context(), fileID); err != nil {
		h.writeError(w, common.NewError(common.KindValidation, "cannot delete file %s", fileID))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *ChatHandler) ServeMedia(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	reader, media, err := h.media.DownloadFile(r.Context(), fileID)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	contentType := media.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(media.Size, 10))

	if _, err := io.Copy(w, reader); err != nil {
		h.log.Error("error streaming file", "file_id", fileID, "error", err)
	}
}
