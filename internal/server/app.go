// Package server wires configuration, storage, services and transports into
// the running Noteful application and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/logging"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/config"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/objectstore"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/repomanager"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/rest"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/services"

	gs "github.com/thinkful-ei23/jon-noteful-v3/internal/server/grpc"
)

const healthProbeInterval = 10 * time.Second

type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer runner
	grpcServer runner
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := objectstore.NewS3Store(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("object store init error: %w", err)
	}

	handler := &rest.Handler{
		Users:   services.NewUserService(db, rm, c),
		Folders: services.NewFolderService(db, rm),
		Tags:    services.NewTagService(db, rm),
		Notes:   services.NewNoteService(db, rm),
		Exports: services.NewExportService(db, rm, store),
		DB:      db,
		Logger:  logger.With("module", "rest"),
	}

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		httpServer: rest.NewHTTPServer(c.EndpointAddrHTTP, logger, rest.NewRouter(handler)),
		grpcServer: gs.NewGRPCServer(c.EndpointAddrGRPC, logger, db, healthProbeInterval),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// start runs a server and cancels the whole app if it fails.
func (app *App) start(ctx context.Context, cancelFunc context.CancelFunc, name string, r runner) {
	if err := r.Run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "http", app.httpServer)
	}()
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "grpc", app.grpcServer)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
