package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gramseva/internal/application/contact/usecases"
	"gramseva/internal/shared/utils"
)

type ContactHandler struct {
	listUC usecases.ListContactsExecutor
}

func NewContactHandler(listUC usecases.ListContactsExecutor) *ContactHandler {
	return &ContactHandler{listUC: listUC}
}

// List handles GET /emergency.
func (h *ContactHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"contacts": result.Contacts,
	})
}
