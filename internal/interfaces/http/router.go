package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	adminusecases "gramseva/internal/application/admin/usecases"
	chatusecases "gramseva/internal/application/chat/usecases"
	contactusecases "gramseva/internal/application/contact/usecases"
	ticketusecases "gramseva/internal/application/ticket/usecases"
	"gramseva/internal/domain/chatbot"
	"gramseva/internal/infrastructure/auth"
	"gramseva/internal/infrastructure/config"
	"gramseva/internal/infrastructure/email"
	"gramseva/internal/infrastructure/metrics"
	"gramseva/internal/infrastructure/repository"
	"gramseva/internal/infrastructure/storage"
	"gramseva/internal/infrastructure/translate"
	"gramseva/internal/interfaces/http/handlers"
	"gramseva/internal/interfaces/http/middleware"
	"gramseva/internal/shared/logger"
	"gramseva/internal/shared/services/markdown"
)

type Router struct {
	engine *gin.Engine

	landingHandler *handlers.LandingHandler
	chatbotHandler *handlers.ChatbotHandler
	ticketHandler  *handlers.TicketHandler
	uploadHandler  *handlers.UploadHandler
	authHandler    *handlers.AuthHandler
	adminHandler   *handlers.AdminHandler
	contactHandler *handlers.ContactHandler
	speechHandler  *handlers.SpeechHandler

	sessionTokens *auth.SessionTokenService
	cfg           *config.Config
}

// NewRouter wires repositories, use cases and handlers onto a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB) (*Router, error) {
	log := logger.NewLogger()

	classifier, err := chatbot.NewClassifier()
	if err != nil {
		return nil, fmt.Errorf("failed to load chatbot rules: %w", err)
	}

	store, err := storage.NewLocalStore(&cfg.Upload)
	if err != nil {
		return nil, fmt.Errorf("failed to init upload store: %w", err)
	}

	ticketRepo := repository.NewTicketRepository(db)
	chatRepo := repository.NewChatLogRepository(db)
	unansweredRepo := repository.NewUnansweredQueryRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	contactRepo := repository.NewContactRepository(db)

	markdownSvc := markdown.NewService()
	recorder := metrics.NewRecorder()
	notifier := email.NewSMTPNotifier(&cfg.Email)
	translator := translate.NewClient(&cfg.Translate)
	tts := translate.NewTTSClient(&cfg.Translate)
	sessionTokens := auth.NewSessionTokenService(&cfg.Auth.Session)
	verifier := auth.NewPasswordVerifier()

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, notifier, recorder, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, markdownSvc, log)
	askChatbotUC := chatusecases.NewAskChatbotUseCase(
		classifier, chatRepo, unansweredRepo, translator, markdownSvc, recorder, log)
	listExchangesUC := chatusecases.NewListExchangesUseCase(chatRepo, markdownSvc, log)
	loginUC := adminusecases.NewLoginUseCase(adminRepo, verifier, sessionTokens, log)
	listContactsUC := contactusecases.NewListContactsUseCase(contactRepo, log)

	return &Router{
		engine:         gin.New(),
		landingHandler: handlers.NewLandingHandler(classifier),
		chatbotHandler: handlers.NewChatbotHandler(askChatbotUC),
		ticketHandler:  handlers.NewTicketHandler(createTicketUC, store),
		uploadHandler:  handlers.NewUploadHandler(store),
		authHandler:    handlers.NewAuthHandler(loginUC, &cfg.Auth.Session, cfg.Auth.Cookie),
		adminHandler:   handlers.NewAdminHandler(listTicketsUC, listExchangesUC),
		contactHandler: handlers.NewContactHandler(listContactsUC),
		speechHandler:  handlers.NewSpeechHandler(tts, cfg.Translate.DefaultLanguage),
		sessionTokens:  sessionTokens,
		cfg:            cfg,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	log := logger.NewLogger()

	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.MaxMultipartMemory = r.cfg.Upload.MaxSizeBytes

	r.engine.GET("/", r.landingHandler.Home)
	r.engine.GET("/chatbot", r.chatbotHandler.Ask)
	r.engine.POST("/chatbot", r.chatbotHandler.Ask)
	r.engine.GET("/submit", r.ticketHandler.Submit)
	r.engine.POST("/submit", r.ticketHandler.Submit)
	r.engine.GET("/upload", r.uploadHandler.Upload)
	r.engine.POST("/upload", r.uploadHandler.Upload)
	r.engine.GET("/emergency", r.contactHandler.List)
	r.engine.GET("/text-to-speech", r.speechHandler.Synthesize)
	r.engine.POST("/text-to-speech", r.speechHandler.Synthesize)

	r.engine.GET("/login", r.authHandler.LoginPage)
	r.engine.POST("/login", r.authHandler.Login)
	r.engine.POST("/logout", r.authHandler.Logout)
	r.engine.GET("/logout", r.authHandler.Logout)

	adminAuth := middleware.AdminAuth(r.sessionTokens, &r.cfg.Auth.Session)
	r.engine.GET("/admin", adminAuth, r.adminHandler.Dashboard)

	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
