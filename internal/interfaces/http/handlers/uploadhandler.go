package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"gramseva/internal/shared/logger"
	"gramseva/internal/shared/utils"
)

type UploadHandler struct {
	store  AttachmentStore
	logger logger.Interface
}

func NewUploadHandler(store AttachmentStore) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger.NewLogger(),
	}
}

// Upload handles /upload. It stores a single file and returns the
// stored name, which a later ticket submission may reference.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "A file is required")
		return
	}

	if !h.store.Allowed(file.Filename) {
		utils.ErrorResponse(c, http.StatusBadRequest,
			fmt.Sprintf("File type %s is not allowed", filepath.Ext(file.Filename)))
		return
	}
	if file.Size > h.store.MaxSizeBytes() {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "File is too large")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Errorw("failed to open upload", "error", err, "filename", file.Filename)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to read the file")
		return
	}
	defer src.Close()

	stored, err := h.store.Save(file.Filename, src)
	if err != nil {
		h.logger.Errorw("failed to store upload", "error", err, "filename", file.Filename)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to store the file")
		return
	}

	utils.CreatedResponse(c, gin.H{"file_path": stored}, "File uploaded successfully")
}
