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

	"go.uber.org/zap"

	appcatalog "github.com/sergey87kuzin/stripe-payments/internal/application/catalog"
	appcheckout "github.com/sergey87kuzin/stripe-payments/internal/application/checkout"
	apporder "github.com/sergey87kuzin/stripe-payments/internal/application/order"
	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/billing"
	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/config"
	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/logger"
	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/persistence"
	"github.com/sergey87kuzin/stripe-payments/internal/interfaces/http/handler"
	"github.com/sergey87kuzin/stripe-payments/internal/interfaces/http/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	gateway, err := billing.NewStripeGateway(&billing.StripeConfig{
		SecretKey:      cfg.Stripe.SecretKey,
		PublishableKey: cfg.Stripe.PublishableKey,
		IsTestMode:     cfg.Stripe.IsTestMode,
		SuccessURL:     cfg.Stripe.SuccessURL,
		CancelURL:      cfg.Stripe.CancelURL,
	}, log.Named("stripe"))
	if err != nil {
		return fmt.Errorf("failed to create stripe gateway: %w", err)
	}

	itemRepo := persistence.NewGormItemRepository(db.DB)
	taxRepo := persistence.NewGormTaxRepository(db.DB)
	discountRepo := persistence.NewGormDiscountRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	syncService := appcatalog.NewPricingSyncService(gateway, log.Named("sync"))
	itemService := appcatalog.NewItemService(itemRepo, discountRepo, syncService, log.Named("items"))
	taxService := appcatalog.NewTaxService(taxRepo, syncService, log.Named("taxes"))
	discountService := appcatalog.NewDiscountService(discountRepo, syncService, log.Named("discounts"))
	orderService := apporder.NewOrderService(orderRepo, itemRepo, discountRepo)
	checkoutService := appcheckout.NewCheckoutService(itemRepo, orderRepo, discountRepo, gateway, log.Named("checkout"))

	engine := router.Setup(cfg.App.Env, log, router.Handlers{
		Item:       handler.NewItemHandler(itemService),
		Tax:        handler.NewTaxHandler(taxService),
		Discount:   handler.NewDiscountHandler(discountService),
		Order:      handler.NewOrderHandler(orderService),
		Storefront: handler.NewStorefrontHandler(checkoutService, itemService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
