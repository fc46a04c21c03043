package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/config"
	"github.com/orcafacil/orcafacil/internal/repository/mongodb"
	"github.com/orcafacil/orcafacil/internal/repository/sheets"
	"github.com/orcafacil/orcafacil/internal/scheduler"
	"github.com/orcafacil/orcafacil/internal/server/handlers"
	"github.com/orcafacil/orcafacil/internal/server/router"
	catalogsvc "github.com/orcafacil/orcafacil/internal/service/catalog"
	customersvc "github.com/orcafacil/orcafacil/internal/service/customers"
	quotesvc "github.com/orcafacil/orcafacil/internal/service/quotes"
	reportingsvc "github.com/orcafacil/orcafacil/internal/service/reporting"
	"github.com/orcafacil/orcafacil/pkg/clients/imagecheck"
	"github.com/orcafacil/orcafacil/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var images catalogsvc.ImageChecker
	if cfg.Images.CheckEnabled {
		images = imagecheck.New()
	}

	catalogSvc := catalogsvc.NewService(repo, images, baseLogger.Named("svc.catalog"))
	customerSvc := customersvc.NewService(repo, baseLogger.Named("svc.customers"))
	quoteSvc := quotesvc.NewService(repo, catalogSvc, baseLogger.Named("svc.quotes"))

	// First catalog page, the equivalent of the listing screen's initial load.
	// A failure here is not fatal: any later load-more trigger retries it.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	if err := catalogSvc.LoadMore(initCtx); err != nil {
		baseLogger.Warn("initial catalog page load failed", zap.Error(err))
	}
	cancelInit()

	var sched *scheduler.Scheduler
	if cfg.ExportEnabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}

		reportingSvc := reportingsvc.NewService(sheetsRepo, repo, baseLogger.Named("svc.reporting"))
		sched = scheduler.NewScheduler(cfg.Export, reportingSvc, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	} else {
		baseLogger.Info("sheets export disabled")
	}

	productHandler := handlers.NewProductHandler(catalogSvc, baseLogger.Named("handlers.products"))
	customerHandler := handlers.NewCustomerHandler(customerSvc, baseLogger.Named("handlers.customers"))
	quoteHandler := handlers.NewQuoteHandler(quoteSvc, baseLogger.Named("handlers.quotes"))
	engine := router.New(productHandler, customerHandler, quoteHandler, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
