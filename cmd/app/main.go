package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/TOPG-DEV/burntheworld/internal/api"
	"github.com/TOPG-DEV/burntheworld/internal/middleware"
	"github.com/TOPG-DEV/burntheworld/internal/repository"
	"github.com/TOPG-DEV/burntheworld/internal/service"
	"github.com/TOPG-DEV/burntheworld/internal/solana"
	"github.com/TOPG-DEV/burntheworld/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	chain := solana.NewClient(cfg.Solana.APIURL, cfg.Solana.RPCURL, cfg.Solana.APIKey)
	hub := api.NewHub()

	userService := service.NewUserService(repo)
	presaleService := service.NewPresaleService(repo)
	leaderboardService := service.NewLeaderboardService(repo)
	verificationService := service.NewVerificationService(repo, chain, service.VerificationConfig{
		TreasuryWallet:  cfg.Solana.TreasuryWallet,
		TokenMint:       cfg.Solana.TokenMint,
		SolPerRound:     cfg.Solana.SolPerRound,
		TxLookbackLimit: cfg.Solana.TxLookbackLimit,
	}, hub)

	admin := middleware.NewAuthorization(cfg.Auth.JWTSecret)

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api/v1")
	api.NewUserRoutes(a, userService, admin)
	api.NewPresaleRoutes(a, presaleService, admin)
	api.NewLeaderboardRoutes(a, leaderboardService, hub)
	api.NewVerificationRoutes(a, verificationService)
	api.NewLeaderSubmissionRoutes(a, userService, admin)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
