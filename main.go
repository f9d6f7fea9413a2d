// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-gonic/gin"

	"go-clan-admin/config"
	"go-clan-admin/logger"
	"go-clan-admin/server"
	"go-clan-admin/services"
	"go-clan-admin/store"
)

func main() {
	if err := run(); err != nil {
		logger.Error.Printf("Server exited: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := logger.InitLogger(cfg.LogDir); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetLogLevel(cfg.Environment)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, closeStores, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	if cfg.SeedData {
		if err := store.SeedSampleData(ctx, stores); err != nil {
			return err
		}
	}

	router := server.NewRouter(cfg, server.Deps{
		Stores:  stores,
		Metrics: newMetrics(cfg),
	})

	var handler http.Handler = router
	if cfg.TracingEnabled {
		handler = xray.Handler(xray.NewFixedSegmentNamer(cfg.ServiceName), router)
		logger.Info.Printf("X-Ray tracing enabled for %s", cfg.ServiceName)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info.Printf("Listening on :%s (%s, store=%s)", cfg.Port, cfg.Environment, cfg.StoreBackend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStores picks the backend named by STORE_BACKEND.
func openStores(ctx context.Context, cfg *config.Config) (*store.Stores, func(), error) {
	if cfg.StoreBackend != config.BackendSQL {
		logger.Warn.Println("Using in-memory store; data is lost on restart")
		return store.NewMemoryStores(), func() {}, nil
	}

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	closeFn := func() {
		if err := db.Close(); err != nil {
			logger.Error.Printf("Closing database: %v", err)
		}
	}
	return store.NewSQLStores(db), closeFn, nil
}

func newMetrics(cfg *config.Config) services.MetricsPublisher {
	if !cfg.MetricsEnabled {
		return services.NoopPublisher{}
	}
	publisher, err := services.NewCloudWatchPublisher(cfg.MetricsNamespace, cfg.ServiceName)
	if err != nil {
		logger.Error.Printf("CloudWatch metrics disabled: %v", err)
		return services.NoopPublisher{}
	}
	logger.Info.Printf("Publishing CloudWatch metrics to namespace %s", cfg.MetricsNamespace)
	return publisher
}
