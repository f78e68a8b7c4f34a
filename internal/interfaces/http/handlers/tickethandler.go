package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"gramseva/internal/application/ticket/usecases"
	"gramseva/internal/shared/logger"
	"gramseva/internal/shared/utils"
)

// AttachmentStore is the subset of the upload store the submit flow needs.
type AttachmentStore interface {
	Allowed(filename string) bool
	MaxSizeBytes() int64
	Save(filename string, r io.Reader) (string, error)
}

type TicketHandler struct {
	createUC usecases.CreateTicketExecutor
	store    AttachmentStore
	logger   logger.Interface
}

func NewTicketHandler(createUC usecases.CreateTicketExecutor, store AttachmentStore) *TicketHandler {
	return &TicketHandler{
		createUC: createUC,
		store:    store,
		logger:   logger.NewLogger(),
	}
}

type SubmitTicketRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Location string `form:"location" binding:"required"`
	Category string `form:"category" binding:"required"`
	Issue    string `form:"issue" binding:"required"`
}

// Submit handles /submit. The request is a multipart form with an
// optional file attachment; the attachment is stored before the ticket row
// is written, and a storage failure fails the whole request.
func (h *TicketHandler) Submit(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Name, location, category and issue are required")
		return
	}

	filePath := ""
	file, err := c.FormFile("file")
	if err == nil && file != nil {
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
			h.logger.Errorw("failed to open attachment", "error", err, "filename", file.Filename)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to read the attachment")
			return
		}
		stored, err := h.store.Save(file.Filename, src)
		src.Close()
		if err != nil {
			h.logger.Errorw("failed to store attachment", "error", err, "filename", file.Filename)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to store the attachment")
			return
		}
		filePath = stored
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Category: req.Category,
		Issue:    req.Issue,
		FilePath: filePath,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"ticket_id":  result.TicketID,
		"status":     result.Status,
		"priority":   result.Priority,
		"created_at": result.CreatedAt,
	}, "Your issue has been submitted. We will get back to you soon.")
}
