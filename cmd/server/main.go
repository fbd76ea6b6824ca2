package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkgate/internal/auth"
	"linkgate/internal/cache"
	"linkgate/internal/codegen"
	"linkgate/internal/config"
	"linkgate/internal/handler"
	"linkgate/internal/mq"
	"linkgate/internal/repository"
	"linkgate/internal/service"
	"linkgate/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Linkgate API
// @version 1.0
// @description Short URL registry with an authenticated management API and a cached redirect endpoint

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the optional YAML config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize repositories
	sqlRepo, err := repository.NewSQLRepository(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer sqlRepo.Close()

	var analyticsSvc service.AnalyticsServiceInterface
	if cfg.Database.Redis.Addr != "" {
		redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
		defer redisRepo.Close()
		analyticsSvc = service.NewAnalyticsService(redisRepo)
	} else {
		log.Warn().Msg("Redis not configured, click analytics disabled")
	}

	// Initialize services
	generator := codegen.NewGenerator(cfg.Codegen.Length)
	shortURLSvc := service.NewShortURLService(sqlRepo, generator)

	// Clicks go through RocketMQ when configured, otherwise straight to the store
	var clicks service.ClickRecorder = shortURLSvc
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, recording clicks directly")
		} else {
			clicks = mqProducer
		}
	}

	redirectCache := cache.NewLRU(cfg.Cache.Capacity)
	resolver := service.NewResolver(redirectCache, shortURLSvc, clicks)

	log.Info().
		Int("code_length", generator.Length()).
		Int("cache_capacity", redirectCache.Capacity()).
		Bool("click_events", mqProducer != nil).
		Msg("Redirect pipeline ready")

	gateway := auth.NewGateway(cfg.Auth, auth.NewJWKSVerifier(ctx))
	if cfg.Auth.IssuerURL == "" && !cfg.Auth.AdminBearerTokenEnable {
		log.Warn().Msg("Neither OIDC nor the admin bearer token is configured, the API will reject every request")
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Swagger documentation
	setupSwagger(router)

	// API routes
	api := router.Group("/api", auth.Middleware(gateway))
	handler.NewAPIHandler(shortURLSvc, resolver, analyticsSvc).Register(api)

	// Redirect handler (short codes)
	redirectHandler := handler.NewRedirectHandler(resolver, analyticsSvc)
	router.GET("/:code", redirectHandler.Redirect)

	// Start MQ consumer if the producer is up
	if mqProducer != nil {
		mqConsumer, err := mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.ClickMessage) error {
			_, err := shortURLSvc.IncrementStatsAt(ctx, msg.Code, msg.AccessTime)
			return err
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Close producer
	if mqProducer != nil {
		if err := mqProducer.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close RocketMQ producer")
		}
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == gin.ReleaseMode {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
