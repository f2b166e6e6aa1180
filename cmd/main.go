package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/okian/rolodex/internal/adapters/http/api"
	"github.com/okian/rolodex/internal/adapters/repository"
	app "github.com/okian/rolodex/internal/app"
	"github.com/okian/rolodex/internal/config"
	"github.com/okian/rolodex/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 30 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Open the contact database. gorm's own logging is silenced; the
	// service logs what matters through pkg/logger.
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Error(ctx, "failed to open database", logger.String("db_path", cfg.DBPath), logger.Error(err))
		os.Exit(1)
	}

	store, err := repository.NewGormStore(db)
	if err != nil {
		log.Error(ctx, "failed to create store", logger.Error(err))
		os.Exit(1)
	}
	if err := store.Migrate(ctx); err != nil {
		log.Error(ctx, "failed to migrate database", logger.Error(err))
		os.Exit(1)
	}

	svc := app.New(store,
		app.WithLogger(log.Named("app")),
		app.WithDefaultThreshold(cfg.MatchThreshold),
		app.WithDefaultSource(cfg.DefaultSource),
	)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	api.NewServer(svc, cfg.MaxUploadBytes).Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server",
			logger.String("addr", cfg.Addr),
			logger.String("db_path", cfg.DBPath),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
}
