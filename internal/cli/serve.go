package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/duty-roster/internal/handlers"
	"github.com/diegoclair/duty-roster/internal/metrics"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the Slack endpoint and the leave cleanup loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			collector := metrics.NewPrometheus("")
			svc := a.services(db, collector)

			svc.Cleanup.Start(ctx)
			defer svc.Cleanup.Stop()

			var slackHandler *handlers.SlackHandler
			if a.cfg.SlackSigningSecret != "" {
				slackClient := slack.New(a.cfg.SlackBotToken)
				slackHandler = handlers.NewSlackHandler(slackClient, svc.Roster, svc.Leave, a.cfg.SlackSigningSecret, a.logger)
			} else {
				a.logger.Warn("SLACK_SIGNING_SECRET is not set, slash commands are disabled")
			}

			api := handlers.NewHTTPHandler(svc.Roster, svc.Leave, svc.Person, db, collector.Handler(), a.logger)

			srv := &http.Server{
				Addr:              ":" + a.cfg.Port,
				Handler:           api.Routes(slackHandler),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("server starting", "port", a.cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
}
