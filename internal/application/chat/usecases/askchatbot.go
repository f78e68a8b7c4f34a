package usecases

import (
	"context"
	"strings"

	"gramseva/internal/domain/chat"
	"gramseva/internal/domain/chatbot"
	"gramseva/internal/shared/errors"
	"gramseva/internal/shared/goroutine"
	"gramseva/internal/shared/logger"
)

type AskChatbotCommand struct {
	Query    string
	Language string
}

type AskChatbotResult struct {
	Response     string
	ResponseHTML string
	Category     string
	Language     string
	Matched      bool
	ExchangeID   uint
}

// Translator renders a reply in the requested language. Implementations are
// best-effort: a returned error means the caller keeps the original text.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// ReplyRenderer converts a canned markdown reply into sanitized HTML.
type ReplyRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// ChatRecorder counts chatbot traffic per category for the metrics endpoint.
type ChatRecorder interface {
	RecordChatRequest(category string, matched bool)
}

type AskChatbotUseCase struct {
	classifier     *chatbot.Classifier
	chatRepo       chat.Repository
	unansweredRepo chat.UnansweredRepository
	translator     Translator
	renderer       ReplyRenderer
	recorder       ChatRecorder
	logger         logger.Interface
}

func NewAskChatbotUseCase(
	classifier *chatbot.Classifier,
	chatRepo chat.Repository,
	unansweredRepo chat.UnansweredRepository,
	translator Translator,
	renderer ReplyRenderer,
	recorder ChatRecorder,
	log logger.Interface,
) *AskChatbotUseCase {
	return &AskChatbotUseCase{
		classifier:     classifier,
		chatRepo:       chatRepo,
		unansweredRepo: unansweredRepo,
		translator:     translator,
		renderer:       renderer,
		recorder:       recorder,
		logger:         log,
	}
}

func (uc *AskChatbotUseCase) Execute(ctx context.Context, cmd AskChatbotCommand) (*AskChatbotResult, error) {
	query := strings.TrimSpace(cmd.Query)
	if query == "" {
		return nil, errors.NewValidationError("query is required")
	}

	result := uc.classifier.Classify(query)

	if uc.recorder != nil {
		uc.recorder.RecordChatRequest(result.Category, result.Matched)
	}

	if !result.Matched {
		// Audit sink only; a failed write must not fail the request.
		uc.logUnanswered(query)
	}

	response := result.Response
	language := chat.DefaultLanguage
	if lang := strings.TrimSpace(cmd.Language); lang != "" && lang != chat.DefaultLanguage && uc.translator != nil {
		translated, err := uc.translator.Translate(ctx, response, lang)
		if err != nil {
			uc.logger.Warnw("translation failed, using original text",
				"error", err, "target_lang", lang)
		} else {
			response = translated
			language = lang
		}
	}

	exchange, err := chat.NewExchange(query, response, language)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.chatRepo.Append(ctx, exchange); err != nil {
		uc.logger.Errorw("failed to append chat exchange", "error", err)
		return nil, errors.NewUnavailableError("The chat service is temporarily unavailable. Please try again.")
	}

	var responseHTML string
	if uc.renderer != nil {
		rendered, err := uc.renderer.ToHTMLSanitized(response)
		if err != nil {
			uc.logger.Warnw("failed to render reply as HTML", "error", err)
		} else {
			responseHTML = rendered
		}
	}

	return &AskChatbotResult{
		Response:     response,
		ResponseHTML: responseHTML,
		Category:     result.Category,
		Language:     language,
		Matched:      result.Matched,
		ExchangeID:   exchange.ID(),
	}, nil
}

func (uc *AskChatbotUseCase) logUnanswered(query string) {
	goroutine.SafeGo(uc.logger, "log-unanswered-query", func() {
		if err := uc.unansweredRepo.Log(context.Background(), query); err != nil {
			uc.logger.Warnw("failed to log unanswered query", "error", err)
		}
	})
}
