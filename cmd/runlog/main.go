package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"runlog/internal/amqp"
	"runlog/internal/collection"
	"runlog/internal/config"
	apphttp "runlog/internal/http"
	applog "runlog/internal/log"
	"runlog/internal/persist"
)

func main() {
	// Load .env for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Component: "runlog"})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	blob, err := persist.OpenStore(ctx, persist.Config{
		Backend:       persist.Backend(cfg.DataBackend),
		SQLiteDBPath:  cfg.SQLiteDBPath,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	}, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize persistence", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer blob.Close()

	// Change publishing is optional; without a broker the store just mutates
	// and persists locally.
	var notify collection.Notifier
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without change events", "error", err)
		} else {
			defer amqpClient.Close()
			notify = func(ctx context.Context, c collection.Change) {
				msg := amqp.NewChangeMessage(string(c.Op), c.EntryID, c.Size)
				if err := amqpClient.PublishChange(ctx, msg); err != nil {
					logger.Error("Failed to publish change event", "op", c.Op, "error", err)
				}
			}
			logger.Info("Initialized AMQP change events",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	store, err := collection.Open(ctx, blob, collection.Options{Notify: notify})
	if err != nil {
		logger.Error("Failed to load collection", "error", err)
		os.Exit(1)
	}
	logger.Info("Collection loaded", "entries", store.Len(), "backend", cfg.DataBackend)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        apphttp.NewServer(store).Handler(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting runlog server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped")
}
