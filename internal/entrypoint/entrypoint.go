package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pawandazzler/french-vocab-anki/internal/audio"
	"github.com/pawandazzler/french-vocab-anki/internal/auth"
	"github.com/pawandazzler/french-vocab-anki/internal/config"
	"github.com/pawandazzler/french-vocab-anki/internal/database"
	"github.com/pawandazzler/french-vocab-anki/internal/database/users"
	"github.com/pawandazzler/french-vocab-anki/internal/database/vocabulary"
	http_controllers "github.com/pawandazzler/french-vocab-anki/internal/http"
	"github.com/pawandazzler/french-vocab-anki/internal/scheduler"
	"github.com/pawandazzler/french-vocab-anki/internal/tasks"
	"github.com/pawandazzler/french-vocab-anki/internal/tts"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting French Vocab Anki v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	vocabRepo := vocabulary.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)

	// Pronunciation synthesis and its disk cache
	synthesizer := tts.NewGoogleTranslateClient(cfg.TTS.BaseURL, cfg.TTS.Language, cfg.TTS.Timeout)
	audioCache, err := audio.NewCache(cfg.Audio.Dir, synthesizer)
	if err != nil {
		log.Fatalf("Failed to initialize audio cache: %v", err)
	}
	log.Printf("Audio cache initialized at %s", cfg.Audio.Dir)

	// Background task queue for audio prewarming
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewPrewarmAudioQueue(audioCache),
			tasks.NewPrewarmMissingAudioQueue(vocabRepo, audioCache),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Periodic cache reconciliation
	var prewarmScheduler *scheduler.PrewarmScheduler
	if cfg.Prewarm.Enabled && taskClient != nil {
		prewarmScheduler = scheduler.NewPrewarmScheduler(taskClient, cfg.Prewarm.Schedule)
		if err := prewarmScheduler.Start(); err != nil {
			log.Fatalf("Failed to start prewarm scheduler: %v", err)
		}
	}

	// Cookie sessions persisted in the application database
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Session)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}
	authMiddleware := auth.NewMiddleware(sessionManager, userRepo)

	routerCfg := http_controllers.RouterConfig{
		Database:         db,
		WordStore:        vocabRepo,
		LoginStore:       userRepo,
		TranslationStore: vocabRepo,
		SessionManager:   sessionManager,
		AuthMiddleware:   authMiddleware,
		AudioCache:       audioCache,
		TaskClient:       taskClient,
		TemplatesPath:    cfg.UI.TemplatesPath,
		StaticPath:       cfg.UI.StaticPath,
		Version:          version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if prewarmScheduler != nil {
			prewarmScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
