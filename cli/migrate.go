package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/spotlight/internal/server"
	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema to the latest version",
		Example: heredoc.Doc(`
			$ spotlight migrate
			$ spotlight migrate -c ./config.yaml
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := server.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := server.Migrate(&config); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			fmt.Println("migrations applied")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "./config.yaml", "Config file path")
	cmd.MarkFlagFilename("config")

	return cmd
}
