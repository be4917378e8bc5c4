package handlers

import (
	"errors"
	"io"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consultation-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultation-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/consultation-scheduler/internal/storage"
)

type AttachmentHandler struct {
	store *storage.AttachmentStore
}

// NewAttachmentHandler accepts a nil store; uploads then answer 503.
func NewAttachmentHandler(store *storage.AttachmentStore) *AttachmentHandler {
	return &AttachmentHandler{store: store}
}

func (h *AttachmentHandler) Upload(c *gin.Context) {
	if h.store == nil {
		httperr.Unavailable(c, "attachments_disabled", "Attachment storage is not configured.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Multipart field \"file\" is required.")
		return
	}
	if fh.Size > storage.MaxAttachmentBytes {
		httperr.BadRequest(c, "attachment_too_large", "Attachment exceeds 5 MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Could not read upload.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxAttachmentBytes+1))
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Could not read upload.")
		return
	}

	stored, err := h.store.Upload(c.Request.Context(), fh.Filename, data)
	switch {
	case err == nil:
		httpresp.Created(c, stored)
	case errors.Is(err, storage.ErrNotImage):
		httperr.BadRequest(c, "attachment_type_not_allowed", "Only png and jpeg images are accepted.")
	case errors.Is(err, storage.ErrTooLarge):
		httperr.BadRequest(c, "attachment_too_large", "Attachment exceeds 5 MB.")
	case errors.Is(err, storage.ErrEmpty):
		httperr.BadRequest(c, "attachment_empty", "Attachment is empty.")
	default:
		log.Printf("attachment upload: %v", err)
		httperr.Write(c, 502, "storage_unavailable", "Could not store attachment.")
	}
}
