package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatusecases "gramseva/internal/application/chat/usecases"
	ticketusecases "gramseva/internal/application/ticket/usecases"
	"gramseva/internal/interfaces/http/middleware"
	"gramseva/internal/shared/logger"
	"gramseva/internal/shared/utils"
)

type AdminHandler struct {
	listTicketsUC   ticketusecases.ListTicketsExecutor
	listExchangesUC chatusecases.ListExchangesExecutor
	logger          logger.Interface
}

func NewAdminHandler(
	listTicketsUC ticketusecases.ListTicketsExecutor,
	listExchangesUC chatusecases.ListExchangesExecutor,
) *AdminHandler {
	return &AdminHandler{
		listTicketsUC:   listTicketsUC,
		listExchangesUC: listExchangesUC,
		logger:          logger.NewLogger(),
	}
}

// Dashboard handles GET /admin. Tickets and chat logs are both newest
// first; either list failing fails the whole page.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	tickets, err := h.listTicketsUC.Execute(ctx)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	exchanges, err := h.listExchangesUC.Execute(ctx)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"admin_id":  c.GetString(middleware.ContextAdminID),
		"tickets":   tickets.Tickets,
		"chat_logs": exchanges.Exchanges,
	})
}
