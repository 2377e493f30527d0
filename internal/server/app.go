// Package server wires configuration, storage, the remote analyzer and the
// gRPC transport into a runnable DermaSight service and handles graceful
// shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/dermasight/internal/faultx"
	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/server/analyzer"
	"github.com/dmitrijs2005/dermasight/internal/server/config"
	"github.com/dmitrijs2005/dermasight/internal/server/imagestore"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dermasight/internal/server/services"

	gs "github.com/dmitrijs2005/dermasight/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	services    gs.Services
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, logging.NewJSON(os.Stdout, c.LogLevel))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	rm, err := repomanager.New(c.StorageDriver, c.DatabaseDSN,
		repomanager.WithFaults(faultx.Injector{Delay: c.SimulatedLatency}))
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	var images imagestore.Store
	if c.ImageStoreEnabled() {
		st, err := imagestore.NewS3Store(ctx, imagestore.Options{
			User:       c.S3RootUser,
			Password:   c.S3RootPassword,
			Bucket:     c.S3Bucket,
			Region:     c.S3Region,
			Endpoint:   c.S3BaseEndpoint,
			PresignTTL: c.PresignTTL,
		})
		if err != nil {
			_ = rm.Close()
			return nil, fmt.Errorf("image store init error: %w", err)
		}
		images = st
	}

	if c.AnalyzerAPIKey == "" {
		logger.Error(ctx, "API_KEY environment variable not set; image analysis will fail")
	}
	a := analyzer.NewGeminiClient(analyzer.Options{
		APIKey:      c.AnalyzerAPIKey,
		Model:       c.AnalyzerModel,
		BaseURL:     c.AnalyzerBaseURL,
		Temperature: c.AnalyzerTemperature,
	}, logger)

	cases := services.NewCaseService(rm, images, logger)
	svc := gs.Services{
		Accounts: services.NewAccountService(rm, c, services.NewLogNotifier(logger), logger),
		Sessions: services.NewSessionService(rm, c, logger),
		Cases:    cases,
		Messages: services.NewMessageService(rm, services.NewHub(), logger),
		Batch:    services.NewBatchService(a, cases, images, c.MaxImageBytes, logger),
	}

	logger.Info(ctx, "Storage ready", "driver", c.StorageDriver, "images", c.ImageStoreEnabled())

	return &App{config: c, logger: logger, repomanager: rm, services: svc}, nil
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the storage backend.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(ctx, "storage close failed", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
