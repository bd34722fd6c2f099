package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/helix90/list-handler/internal/api/controller"
	"github.com/helix90/list-handler/internal/api/repository"
	"github.com/helix90/list-handler/internal/api/service"
	"github.com/helix90/list-handler/internal/auth"
	"github.com/helix90/list-handler/internal/config"
	"github.com/helix90/list-handler/internal/db"
	"github.com/helix90/list-handler/internal/denylist"
	"github.com/helix90/list-handler/internal/hash"
	"github.com/helix90/list-handler/internal/logger"
	"github.com/helix90/list-handler/internal/notify"
	"github.com/helix90/list-handler/internal/server"
	"github.com/helix90/list-handler/internal/telemetry"
	"github.com/helix90/list-handler/internal/token"
	"github.com/helix90/list-handler/internal/validator"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	if err := validator.Register(); err != nil {
		log.Fatalf("failed to register validators: %v", err)
	}

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.Initialize(pool); err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}

	// Token revocation: Redis when configured, in-process otherwise.
	revoked := denylist.NewMemory()
	if cfg.RedisAddr != "" {
		rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("failed to initialize redis: %v", err)
		}
		revoked = denylist.NewRedis(rdb)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	listRepo := repository.NewListRepository(pool)
	itemRepo := repository.NewItemRepository(pool)

	// Create services
	tokens := token.NewService(cfg.SecretKey, cfg.AccessTokenTTL)
	hasher := hash.NewBcrypt(cfg.BcryptCost)
	hub := notify.NewHub()

	authService := service.NewAuthService(userRepo, hasher, tokens, revoked)
	listService := service.NewListService(listRepo, hub)
	itemService := service.NewItemService(itemRepo, hub)

	// Create controllers and the guard
	guard := auth.NewGuard(tokens, userRepo, revoked)
	authController := controller.NewAuthController(authService)
	listController := controller.NewListController(listService)
	itemController := controller.NewItemController(itemService)
	wsController := controller.NewWSController(hub)

	// Create the Gin-based server
	srv := server.NewServer(guard, authController, listController, itemController, wsController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
