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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/filpay/filpay/internal/history"
	"github.com/filpay/filpay/internal/payments"
	"github.com/filpay/filpay/internal/server"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the read-only HTTP API",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Usage: "listen port (overrides config)"},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	// The API only reads; no signing key is needed.
	client, cfg, err := newClient(c, false)
	if err != nil {
		return err
	}
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	port := cfg.Server.Port
	if c.IsSet("port") {
		port = c.Int("port")
	}

	token := client.Token()
	accounts := payments.NewAccountService(client, token)
	rails := payments.NewRailRegistry(client, token)
	calc := payments.NewCalculator(client)

	var hist *history.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		if err := rdb.Ping(c.Context).Err(); err != nil {
			return fmt.Errorf("redis connect: %w", err)
		}
		hist = history.New(rdb)
		log.Info("settlement history enabled", zap.String("redis", cfg.Redis.Addr))
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: server.New(accounts, rails, calc, hist, log).Router(),
	}

	go func() {
		log.Info("HTTP server starting",
			zap.Int("port", port),
			zap.String("contract", cfg.Chain.ContractAddress),
			zap.String("token", token.Symbol),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	select {
	case <-quit:
	case <-c.Context.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}
	log.Info("shutdown complete")
	return nil
}
