package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/spotlight/internal/server"
	"github.com/goto/spotlight/pkg/log"
	"github.com/goto/spotlight/plugins/discussion"
	"github.com/goto/spotlight/plugins/notifiers"
	"github.com/goto/spotlight/plugins/poststore"
	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run database migrations and start the feedback service",
		Example: heredoc.Doc(`
			$ spotlight serve
			$ spotlight serve -c ./config.yaml
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := server.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger := log.NewCtxLogger(config.LogLevel, []string{"request_id"})
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			notifier, err := notifiers.NewClient(&config.Notifier, logger)
			if err != nil {
				return fmt.Errorf("initializing notifier: %w", err)
			}

			var discussionClient discussion.Client
			if config.Discussion.URL != "" {
				discussionClient, err = discussion.NewHTTPClient(&config.Discussion, logger)
				if err != nil {
					return fmt.Errorf("initializing discussion client: %w", err)
				}
			} else {
				discussionClient = discussion.NewNoopClient()
			}

			if config.PostStore.URL == "" {
				return errors.New("post_store.url is required")
			}
			postStore, err := poststore.NewHTTPClient(&config.PostStore)
			if err != nil {
				return fmt.Errorf("initializing post store client: %w", err)
			}

			if err := server.Migrate(&config); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}

			return server.RunServer(ctx, &config, logger, server.ServiceDeps{
				Config:           &config,
				Logger:           logger,
				Notifier:         notifier,
				DiscussionClient: discussionClient,
				PostStore:        postStore,
			})
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "./config.yaml", "Config file path")
	cmd.MarkFlagFilename("config")

	return cmd
}
