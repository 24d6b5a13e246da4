package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coregx/forumhub"
	"github.com/coregx/forumhub/cmd/forumhub-server/internal/api"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the forumhub HTTP server.

The server shuts down gracefully on SIGINT or SIGTERM, waiting up to
SERVER_SHUTDOWN_TIMEOUT for in-flight requests.

Endpoints:
  POST   /login
  POST   /topicos
  GET    /topicos?page=&size=&sort=field,asc|desc
  GET    /topicos/{id}
  PUT    /topicos/{id}
  DELETE /topicos/{id}
  GET    /health`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply database migrations before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if serveMigrate {
		if err := forumhub.Migrate(ctx, a.db, a.cfg.Database.Driver, a.cfg.Database.Prefix); err != nil {
			return err
		}
		a.logger.Info("Migrations applied")
	}

	handler := api.NewHandler(a.topics, a.auth, a.logger, version)
	server := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      api.NewRouter(handler, api.RouterConfig{AllowedOrigins: a.cfg.CORS.AllowedOrigins}, a.logger),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server listening", zap.String("addr", server.Addr), zap.String("version", version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	a.logger.Info("Server stopped gracefully")
	return nil
}
