package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/carework/internal/buildinfo"
	"github.com/dmitrijs2005/carework/internal/client/cache"
	"github.com/dmitrijs2005/carework/internal/client/cli"
	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/config"
	"github.com/dmitrijs2005/carework/internal/client/kv"
	"github.com/dmitrijs2005/carework/internal/client/messages"
	"github.com/dmitrijs2005/carework/internal/client/services"
	"github.com/dmitrijs2005/carework/internal/client/session"
	"github.com/dmitrijs2005/carework/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)

	store, closeStore, err := openStore(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer closeStore()

	sess := session.NewStore(store, cfg.KeyPrefix)
	apiClient := client.NewHTTPClient(cfg.BaseURL,
		client.WithTokenSource(sess),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.RateLimit),
		client.WithLogger(logger.With("component", "client")),
	)

	svc := services.New(apiClient, sess, logger, cfg.IsDevelopment())
	inv := cache.NewInvalidator(store, sess, logger.With("component", "cache"))

	app := cli.NewApp(svc, inv, messages.New(cfg.Locale), logger, os.Stdin, os.Stdout)
	app.Run(ctx)
}

// openStore opens the SQLite store at path, or an in-memory one when path is
// empty.
func openStore(ctx context.Context, path string) (kv.Store, func(), error) {
	if path == "" {
		return kv.NewMemoryStore(), func() {}, nil
	}
	s, err := kv.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = s.Close() }, nil
}
