package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/leetguide/backend/internal/cache"
	"github.com/leetguide/backend/internal/config"
	"github.com/leetguide/backend/internal/handlers"
	"github.com/leetguide/backend/internal/logger"
	"github.com/leetguide/backend/internal/middleware"
	"github.com/leetguide/backend/internal/repository"
	"github.com/leetguide/backend/internal/service"
	"github.com/leetguide/backend/pkg/leetcode"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var port string

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting leetguide API server",
		logger.String("env", cfg.Server.Env),
		logger.String("leetcode_url", cfg.LeetCode.GraphQLURL),
	)

	// Optional response cache; runs without redis when no addr is set
	responseCache := cache.Noop()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		responseCache = cache.NewRedisCache(client)
		log.Info("redis cache enabled", logger.String("addr", cfg.Redis.Addr))
	}

	// Initialize the LeetCode client and repositories
	leetcodeClient := leetcode.NewClient(cfg.LeetCode.GraphQLURL, cfg.LeetCode.UserAgent, cfg.LeetCode.Timeout)
	userRepo := repository.NewUserRepository(leetcodeClient)
	problemRepo := repository.NewProblemRepository(leetcodeClient)

	// Initialize services
	statsService := service.NewStatsService(userRepo, responseCache, cfg.Redis.TTL)
	recommendationService := service.NewRecommendationService(problemRepo, statsService)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(statsService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	v1 := router.Group("/api/v1")
	{
		leetcodeRoutes := v1.Group("/leetcode")
		{
			leetcodeRoutes.GET("/user/:username", userHandler.GetUserStats)
			leetcodeRoutes.GET("/compare/:user1/:user2", userHandler.CompareUsers)
		}

		v1.POST("/recommendations", recommendationHandler.GetRecommendations)
		v1.POST("/learning-path", recommendationHandler.GetLearningPath)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
