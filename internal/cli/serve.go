package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"page-assist/internal/cache"
	"page-assist/internal/config"
	"page-assist/internal/handler"
	"page-assist/internal/logger"
	"page-assist/internal/relay"
	"page-assist/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, opts.cfg)
		},
	}
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()

	generator, err := generatorFactory(cfg)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	log.Info("Text generator initialized", zap.String("provider", cfg.LLM.Provider))

	store, closeStore, err := cache.Open(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("Failed to close bookmark store", zap.Error(err))
		}
	}()

	dispatcher := relay.NewDispatcher(
		service.NewRelayService(generator, cfg.Relay.MaxContentChars),
		service.NewSessionStore(),
	)
	app := handler.NewApp(cfg.Server, handler.Handlers{
		Relay:     handler.NewRelayHandler(dispatcher),
		Bookmarks: handler.NewBookmarkHandler(service.NewBookmarkService(store)),
		Health:    handler.NewHealthHandler(store),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("Server exited gracefully")
	return nil
}
