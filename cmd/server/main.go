package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/hongminglow/finance-be/internal/config"
	"github.com/hongminglow/finance-be/internal/receipts"
	"github.com/hongminglow/finance-be/internal/server"
	"github.com/hongminglow/finance-be/internal/storage"
	"github.com/hongminglow/finance-be/internal/storage/postgres"
	"github.com/hongminglow/finance-be/internal/storage/sqlite"
)

func main() {
	loadLocalEnv()
	configureJSON()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.UsingDefaultSecret() {
		log.Println("JWT_SECRET not set; signing tokens with the built-in default secret")
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer store.Close()

	uploads, err := receipts.NewStore(cfg.UploadPath)
	if err != nil {
		log.Fatalf("init uploads: %v", err)
	}

	srv := server.New(cfg, store, uploads)

	go func() {
		log.Printf("finance backend listening on %s (%s storage)", cfg.HTTPAddress(), cfg.DBDriver)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.DBDriver == config.DriverSQLite {
		return sqlite.NewStore(ctx, cfg.DatabaseURL)
	}
	return postgres.NewStore(ctx, cfg.DatabaseURL)
}

// configureJSON makes decimal amounts encode as JSON numbers, which the Mini App reads.
func configureJSON() {
	decimal.MarshalJSONWithoutQuotes = true
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
