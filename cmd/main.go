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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"promptforge/config"
	"promptforge/internal/ai"
	"promptforge/internal/api"
	"promptforge/internal/catalog"
	"promptforge/internal/deploy/netlify"
	"promptforge/internal/engine"
	"promptforge/internal/logger"
)

func main() {
	// Load .env before viper reads the environment. Missing file is normal
	// in production.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: error loading .env file: %v", err)
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel)
	defer zlog.Sync() //nolint:errcheck

	// The catalog is fixed at build time; a malformed template is a bug, not
	// a runtime condition, so it kills the process here.
	cat, err := catalog.Load()
	if err != nil {
		zlog.Fatal("invalid template catalog", zap.Error(err))
	}
	zlog.Info("template catalog loaded",
		zap.Int("templates", cat.Len()),
		zap.String("default", cat.DefaultID()))

	// Both collaborators are optional. Without an OpenAI key, unmatched ideas
	// get the default template; without a Netlify token, deployment is never
	// attempted.
	var fallback engine.FallbackGenerator
	if cfg.OpenAIKey != "" {
		fallback = ai.NewGenerator(cfg.OpenAIKey, cfg.OpenAIModel, zlog)
		zlog.Info("ai fallback enabled", zap.String("model", cfg.OpenAIModel))
	} else {
		zlog.Info("ai fallback disabled, unmatched ideas use the default template")
	}

	var deployer engine.Deployer
	if cfg.NetlifyToken != "" {
		deployer = netlify.NewClient(
			cfg.NetlifyToken,
			cfg.NetlifyAPIBase,
			time.Duration(cfg.DeployTimeoutSeconds)*time.Second,
			zlog,
		)
		zlog.Info("netlify deployment enabled",
			zap.Int("timeoutSeconds", cfg.DeployTimeoutSeconds))
	} else {
		zlog.Info("netlify deployment disabled")
	}

	svc := engine.NewService(cat, deployer, fallback, zlog)
	handler := api.NewAPIHandler(svc, zlog)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	api.RegisterRoutes(router, handler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Timeouts protect against slow clients; WriteTimeout must cover a
		// full generation including the deployment attempt.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.DeployTimeoutSeconds)*time.Second + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("starting API server", zap.String("address", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("API server listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zlog.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	} else {
		zlog.Info("server stopped")
	}
}
