package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"texstock/config"
	_ "texstock/docs"
	"texstock/internal/pkg/cache"
	"texstock/internal/pkg/database"
	"texstock/internal/pkg/logger"
	"texstock/internal/pkg/token"

	"texstock/internal/api/article"
	"texstock/internal/api/destock"
	"texstock/internal/api/router"
	"texstock/internal/api/slot"
	"texstock/internal/api/stock"
	"texstock/internal/api/user"
	"texstock/internal/repository/articlerepo"
	"texstock/internal/repository/samplerepo"
	"texstock/internal/repository/slotrepo"
	"texstock/internal/repository/userrepo"
	"texstock/internal/service/articleservice"
	"texstock/internal/service/destockservice"
	"texstock/internal/service/sampledirectory"
	"texstock/internal/service/slotservice"
	"texstock/internal/service/stockservice"
	"texstock/internal/service/userservice"
)

// @title TexStock API
// @version 1.0
// @description Textile sample inventory: articles, slots, stocking and destocking.
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("warning: .env file not found, loading configs from system environment only")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("configuration loaded", nil)

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to the database", err)
	}
	defer db.Close()
	log.Info("PostgreSQL connection established", nil)

	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	log.Info("Redis connection established", nil)

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	// Repository -> Service -> Handler
	articleRepo := articlerepo.NewArticleRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTimeout, log)
	sampleRepo := samplerepo.NewSampleRepository(db, cfg.DBTimeout, log)
	slotRepo := slotrepo.NewSlotRepository(db, cfg.DBTimeout, log)
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)

	sampleDir := sampledirectory.NewService(sampleRepo, log)

	articleSvc := articleservice.NewService(articleRepo, log)
	slotSvc := slotservice.NewService(slotRepo, sampleRepo, log)
	stockSvc := stockservice.NewService(articleRepo, sampleDir, slotRepo, log)
	destockSvc := destockservice.NewService(articleRepo, sampleRepo, slotRepo, log)
	userSvc := userservice.NewService(userRepo, tokenSvc, log)

	articleHandler := article.NewHandler(articleSvc, log)
	slotHandler := slot.NewHandler(slotSvc, log)
	stockHandler := stock.NewHandler(stockSvc, log)
	destockHandler := destock.NewHandler(destockSvc, log)
	userHandler := user.NewHandler(userSvc, log)
	log.Debug("handlers initialized", nil)

	r := router.New(router.Config{
		ArticleHandler:       articleHandler,
		SlotHandler:          slotHandler,
		StockHandler:         stockHandler,
		DestockHandler:       destockHandler,
		UserHandler:          userHandler,
		TokenService:         tokenSvc,
		CacheClient:          cacheClient,
		RateLimitMaxRequests: cfg.RateLimitMaxRequests,
		RateLimitPeriod:      cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("shutdown signal received, stopping server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced server shutdown", err)
	}

	log.Info("server stopped", nil)
}
