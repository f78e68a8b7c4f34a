package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gramseva/internal/domain/chatbot"
	"gramseva/internal/shared/utils"
)

type LandingHandler struct {
	classifier *chatbot.Classifier
}

func NewLandingHandler(classifier *chatbot.Classifier) *LandingHandler {
	return &LandingHandler{classifier: classifier}
}

// Home handles GET /.
func (h *LandingHandler) Home(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Village help desk", gin.H{
		"service":    "gramseva",
		"categories": h.classifier.Categories(),
		"endpoints": gin.H{
			"chatbot":   "/chatbot",
			"submit":    "/submit",
			"upload":    "/upload",
			"emergency": "/emergency",
			"speech":    "/text-to-speech",
		},
	})
}
