package main

import (
	"context"
	"errors"
	"github.com/deanjroach84/DreamTales/infrastructure/gin_interface/controllers"
	"github.com/deanjroach84/DreamTales/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the story HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				log.Error().Err(err).Msg("Failed to start story service")
				return err
			}
			defer a.Close()

			router := gin.New()
			router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(a.logger))

			err = router.SetTrustedProxies(nil)
			if err != nil {
				log.Error().Err(err).Msg("Failed to set trusted proxies!")
				return err
			}

			controllers.NewStoriesController(a.logger, a.pipeline).RegisterRoutes(router)

			server := &http.Server{
				Addr:    ":" + a.serverConfig.Port,
				Handler: router,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.InfoWithFields("Listening", map[string]interface{}{"addr": server.Addr})
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					a.logger.Error(err, "Failed to start server!")
					return err
				}
				return nil
			case <-ctx.Done():
			}

			a.logger.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
}
