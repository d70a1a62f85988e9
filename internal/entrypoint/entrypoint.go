package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vAhyThe/words/internal/config"
	http_controllers "github.com/vAhyThe/words/internal/http"
	"github.com/vAhyThe/words/internal/logging"
	"github.com/vAhyThe/words/internal/scheduler"
	"github.com/vAhyThe/words/internal/tasks"
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
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// kill -2 is SIGINT, plain kill sends SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the server goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("server exiting")
}

func Run(cfg *config.Config, version string) {
	logger := NewLogger(cfg)
	logger.Info().Str("version", version).Msg("starting personal dictionary")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	defer app.Close()

	healthChecks := make(map[string]http_controllers.HealthCheck, len(app.HealthChecks)+1)
	for name, check := range app.HealthChecks {
		healthChecks[name] = check
	}

	routerCfg := http_controllers.RouterConfig{
		Words:              app.Manager,
		Seeder:             app.Manager,
		Preferences:        app.Store,
		HealthChecks:       healthChecks,
		DefaultTargetCount: cfg.Dictionary.TargetCount,
		DefaultBatchSize:   cfg.Dictionary.BatchSize,
		DefaultLanguage:    cfg.Dictionary.Language,
		MaxCount:           cfg.Dictionary.MaxCount,
		Version:            version,
	}

	var taskClient *tasks.Client
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}
		taskLogger := logging.Component(logger, "tasks")

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg, taskLogger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialize task queue, background growth disabled")
		} else {
			taskClient.Register(tasks.NewAppendWordsQueue(app.Manager, taskLogger))
			go taskClient.Start(ctx)

			routerCfg.TaskQueue = taskClient
			healthChecks["tasks"] = taskClient.Ping
		}
	}

	backup := scheduler.NewBackupScheduler(app.Manager, scheduler.BackupConfig{
		Enabled:  cfg.Backup.Enabled,
		Schedule: cfg.Backup.Schedule,
		Dir:      cfg.Backup.Dir,
		Keep:     cfg.Backup.Keep,
	}, logging.Component(logger, "backup"))
	if err := backup.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to start backup scheduler")
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, func(ctx context.Context) {
		backup.Stop()
		if taskClient != nil {
			taskClient.Stop(ctx)
			if err := taskClient.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close task database")
			}
		}
	})
}
