package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gramseva/internal/application/chat/usecases"
	"gramseva/internal/shared/logger"
	"gramseva/internal/shared/utils"
)

type ChatbotHandler struct {
	askUC  usecases.AskChatbotExecutor
	logger logger.Interface
}

func NewChatbotHandler(askUC usecases.AskChatbotExecutor) *ChatbotHandler {
	return &ChatbotHandler{
		askUC:  askUC,
		logger: logger.NewLogger(),
	}
}

type AskRequest struct {
	Query    string `json:"query" form:"query" binding:"required"`
	Language string `json:"language" form:"language"`
}

type AskResponse struct {
	Response     string `json:"response"`
	ResponseHTML string `json:"response_html,omitempty"`
	Category     string `json:"category"`
	Language     string `json:"language"`
	Matched      bool   `json:"matched"`
}

// Ask handles /chatbot. Form fields bind from the query string on GET and
// from the body on POST.
func (h *ChatbotHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Query is required")
		return
	}

	result, err := h.askUC.Execute(c.Request.Context(), usecases.AskChatbotCommand{
		Query:    req.Query,
		Language: req.Language,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", AskResponse{
		Response:     result.Response,
		ResponseHTML: result.ResponseHTML,
		Category:     result.Category,
		Language:     result.Language,
		Matched:      result.Matched,
	})
}
