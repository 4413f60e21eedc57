package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lucascresencio/leet-test/internal/api"
	"github.com/lucascresencio/leet-test/internal/auth"
	"github.com/lucascresencio/leet-test/internal/config"
	"github.com/lucascresencio/leet-test/internal/email"
	"github.com/lucascresencio/leet-test/internal/maintainer"
	"github.com/lucascresencio/leet-test/internal/ong"
	"github.com/lucascresencio/leet-test/internal/pagarme"
	"github.com/lucascresencio/leet-test/internal/payment"
	"github.com/lucascresencio/leet-test/internal/user"
	"github.com/lucascresencio/leet-test/internal/webhook"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	registerValidators()

	policy := auth.NewPolicy()
	gateway := pagarme.New(pagarme.Config{
		BaseURL: cfg.PagarmeBaseURL,
		APIKey:  cfg.PagarmeAPIKey,
		Timeout: cfg.PagarmeTimeout,
	})

	userRepo := user.NewRepository(db)
	maintainerRepo := maintainer.NewRepository(db)
	ongRepo := ong.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	webhookRepo := webhook.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo, cfg.JWTSecret))
	maintainerHandler := maintainer.NewHandler(maintainerRepo, userRepo)
	ongHandler := ong.NewHandler(ongRepo)
	paymentHandler := payment.NewHandler(payment.NewService(
		paymentRepo, maintainerRepo, ongRepo, gateway, policy, cfg.LeetRecipientID))
	webhookHandler := webhook.NewHandler(webhook.NewService(
		webhookRepo, paymentRepo, maintainerRepo, emailService))

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	// Gateway deliveries are unauthenticated but rate limited.
	webhooks := router.Group("/webhooks")
	webhooks.Use(RateLimitMiddleware(50, 100))
	{
		webhooks.POST("/pagarme", webhookHandler.Receive)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/webhooks/logs",
			auth.RequireAction(policy, auth.ActionViewLogs), webhookHandler.List)

		protected.POST("/maintainers", maintainerHandler.Register)
		protected.GET("/maintainers/me", maintainerHandler.GetMe)

		cards := protected.Group("/maintainers/me/cards")
		cards.Use(auth.RequireAction(policy, auth.ActionViewCards))
		{
			cards.GET("", maintainerHandler.ListCards)
			cards.DELETE("/:cardID", maintainerHandler.DeactivateCard)
		}

		protected.GET("/ongs", ongHandler.List)
		protected.GET("/ongs/:id", ongHandler.Get)
		protected.GET("/ongs/:id/campaigns", ongHandler.ListCampaigns)
		protected.GET("/ongs/:id/bases", ongHandler.ListBases)
		protected.GET("/ongs/:id/projects", ongHandler.ListProjects)
		protected.GET("/ongs/:id/projects/:projectID/attendees", ongHandler.ListAttendees)

		manage := protected.Group("/ongs")
		manage.Use(auth.RequireAction(policy, auth.ActionManageOng))
		{
			manage.POST("", ongHandler.Create)
			manage.POST("/:id/campaigns", ongHandler.CreateCampaign)
			manage.POST("/:id/bases", ongHandler.CreateBase)
			manage.POST("/:id/projects", ongHandler.CreateProject)
			manage.POST("/:id/projects/:projectID/attendees", ongHandler.CreateAttendee)
		}

		payments := protected.Group("/payments")
		payments.Use(RateLimitMiddleware(5, 10))
		{
			payments.POST("", paymentHandler.Create)
			payments.GET("", paymentHandler.List)
			payments.GET("/:id", paymentHandler.Get)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, api.HealthResponse{Status: "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
