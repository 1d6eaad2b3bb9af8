package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"developerhorizon/internal/config"
	"developerhorizon/internal/db"
	"developerhorizon/internal/httpserver"
	"developerhorizon/internal/payments"
	"developerhorizon/internal/printify"
	cartrepo "developerhorizon/internal/repository/cart"
	handoffrepo "developerhorizon/internal/repository/handoff"
	cartsvc "developerhorizon/internal/service/cart"
	catalogsvc "developerhorizon/internal/service/catalog"
	checkoutsvc "developerhorizon/internal/service/checkout"
	ordersvc "developerhorizon/internal/service/order"
	sessionsvc "developerhorizon/internal/service/session"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	printifyClient, err := printify.New(cfg.UpstreamBaseURL, cfg.StoreID)
	if err != nil {
		logger.Fatalf("init print-provider client: %v", err)
	}
	paymentsClient, err := payments.New(cfg.PaymentsBaseURL, cfg.PaymentStoreID)
	if err != nil {
		logger.Fatalf("init payments client: %v", err)
	}

	cartRepo := cartrepo.NewPostgres(dbpool)
	handoffRepo := handoffrepo.NewPostgres(dbpool)

	sessions := sessionsvc.New()
	carts := cartsvc.NewManager(cartRepo, logger)
	catalog := catalogsvc.NewStore(printifyClient, logger)
	checkouts := checkoutsvc.NewManager(carts, printifyClient, paymentsClient, logger)
	orders := ordersvc.New(printifyClient, printifyClient, catalog, carts, checkouts, handoffRepo, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Sessions:  sessions,
		Carts:     carts,
		Catalog:   catalog,
		Checkouts: checkouts,
		Orders:    orders,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
