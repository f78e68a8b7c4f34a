package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gramseva/internal/shared/logger"
	"gramseva/internal/shared/utils"
)

// SpeechSynthesizer converts short text to spoken audio.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

type SpeechHandler struct {
	synthesizer SpeechSynthesizer
	defaultLang string
	logger      logger.Interface
}

func NewSpeechHandler(synthesizer SpeechSynthesizer, defaultLang string) *SpeechHandler {
	return &SpeechHandler{
		synthesizer: synthesizer,
		defaultLang: defaultLang,
		logger:      logger.NewLogger(),
	}
}

type SpeechRequest struct {
	Text     string `json:"text" form:"text"`
	Language string `json:"language" form:"lang"`
}

// Synthesize handles GET and POST /text-to-speech. A synthesis failure is not an
// error to the client: the response degrades to the plain text so callers
// can display it instead of playing audio.
func (h *SpeechHandler) Synthesize(c *gin.Context) {
	var req SpeechRequest
	if err := c.ShouldBind(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Text is required")
		return
	}

	lang := req.Language
	if lang == "" {
		lang = h.defaultLang
	}

	audio, err := h.synthesizer.Synthesize(c.Request.Context(), req.Text, lang)
	if err != nil {
		h.logger.Warnw("speech synthesis failed", "error", err, "language", lang)
		utils.SuccessResponse(c, http.StatusOK, "Speech is unavailable, showing text instead", gin.H{
			"text":     req.Text,
			"language": lang,
		})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
